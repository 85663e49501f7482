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

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// Find returns non-deleted questions matching the optional category and
// difficulty filters, newest first.
func (r *QuestionRepository) Find(ctx context.Context, category, difficulty string, limit int64) ([]models.Question, error) {
	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if category != "" {
		filter["category"] = category
	}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "deleted": bson.M{"$ne": true}}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) (string, error) {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	question.CreatedAt = time.Now()
	if _, err := r.Col.InsertOne(ctx, question); err != nil {
		return "", err
	}
	return question.ID, nil
}

// Update applies a partial merge, never touching _id or created_at.
func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	delete(update, "_id")
	delete(update, "created_at")
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// SoftDelete flags the question instead of removing it; filtered reads skip
// flagged documents.
func (r *QuestionRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"deleted": true}})
	return err
}

// BulkInsert writes the batch in one InsertMany call.
func (r *QuestionRepository) BulkInsert(ctx context.Context, questions []models.Question) error {
	docs := make([]any, 0, len(questions))
	now := time.Now()
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = primitive.NewObjectID().Hex()
		}
		questions[i].CreatedAt = now
		docs = append(docs, questions[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "category", bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
