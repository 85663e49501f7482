package service

import (
	"context"
	"testing"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeSettingsStore struct {
	settings models.AppSettings
	updates  []bson.M
}

func (f *fakeSettingsStore) Get(ctx context.Context) (models.AppSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, update bson.M) error {
	f.updates = append(f.updates, update)
	return nil
}

func TestSettingsUpdate_RejectsUnknownKeys(t *testing.T) {
	store := &fakeSettingsStore{settings: models.DefaultSettings()}
	svc := NewSettingsService(store)

	err := svc.Update(context.Background(), bson.M{"max_questions_per_quiz": 15, "surprise_field": true})
	if err == nil {
		t.Fatal("Expected rejection of the unknown key")
	}
	if len(store.updates) != 0 {
		t.Error("Rejected update reached the store")
	}
}

func TestSettingsUpdate_RejectsEmptyUpdate(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{})
	if err := svc.Update(context.Background(), bson.M{}); err == nil {
		t.Error("Expected rejection of an empty update")
	}
}

func TestSettingsUpdate_AcceptsKnownKeys(t *testing.T) {
	store := &fakeSettingsStore{settings: models.DefaultSettings()}
	svc := NewSettingsService(store)

	err := svc.Update(context.Background(), bson.M{
		"maintenance_mode":          true,
		"difficulty_threshold_hard": 90,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(store.updates) != 1 {
		t.Fatalf("Expected one store write, got %d", len(store.updates))
	}
}

func TestDefaultSettings_Thresholds(t *testing.T) {
	settings := models.DefaultSettings()
	if settings.MaxQuestionsPerQuiz != 10 {
		t.Errorf("Expected 10 questions per quiz, got %d", settings.MaxQuestionsPerQuiz)
	}
	if settings.DifficultyThresholdEasy != 50 || settings.DifficultyThresholdHard != 80 {
		t.Errorf("Got thresholds easy=%d hard=%d", settings.DifficultyThresholdEasy, settings.DifficultyThresholdHard)
	}
	if !settings.AdaptiveDifficultyEnabled {
		t.Error("Adaptive difficulty should default on")
	}
	if settings.MaintenanceMode {
		t.Error("Maintenance mode should default off")
	}
}
