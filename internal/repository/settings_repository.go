package repository

import (
	"context"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsDocID = "app"

type SettingsRepository struct {
	Col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{Col: db.Collection("settings")}
}

// Get returns the singleton settings document, or defaults when it has
// never been written.
func (r *SettingsRepository) Get(ctx context.Context) (models.AppSettings, error) {
	var settings models.AppSettings
	err := r.Col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

// Update merges partial settings into the singleton document.
func (r *SettingsRepository) Update(ctx context.Context, update bson.M) error {
	delete(update, "_id")
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": settingsDocID}, bson.M{"$set": update}, opts)
	return err
}
