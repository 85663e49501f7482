package repository

import (
	"context"
	"time"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("quizAttempts")}
}

// Append records a completed attempt. The completion timestamp is assigned
// here, server-side; attempts are never updated afterwards.
func (r *AttemptRepository) Append(ctx context.Context, attempt *models.QuizAttempt) (string, error) {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	attempt.CompletedAt = time.Now()
	if _, err := r.Col.InsertOne(ctx, attempt); err != nil {
		return "", err
	}
	return attempt.ID, nil
}

// FindByUser returns the user's attempt history, most recent first.
func (r *AttemptRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.QuizAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var a models.QuizAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}
