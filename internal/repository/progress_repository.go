package repository

import (
	"context"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("userProgress")}
}

// FindByKey loads the (user, category) record; mongo.ErrNoDocuments when
// the user has no attempts in that category yet.
func (r *ProgressRepository) FindByKey(ctx context.Context, userID, category string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": models.ProgressKey(userID, category)}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.UserProgress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "last_attempt_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.UserProgress
	for cur.Next(ctx) {
		var p models.UserProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}

// Upsert writes the full recomputed aggregate for the (user, category) key.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	progress.ID = models.ProgressKey(progress.UserID, progress.Category)
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": progress.ID}, progress, opts)
	return err
}
