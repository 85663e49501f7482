package service

import (
	"context"
	"fmt"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type SettingsStore interface {
	Get(ctx context.Context) (models.AppSettings, error)
	Update(ctx context.Context, update bson.M) error
}

type SettingsService struct {
	Store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{Store: store}
}

func (s *SettingsService) Get(ctx context.Context) (models.AppSettings, error) {
	return s.Store.Get(ctx)
}

// Update merges the known settings fields; unknown keys are rejected so a
// typo cannot silently grow the singleton document.
func (s *SettingsService) Update(ctx context.Context, update bson.M) error {
	known := map[string]bool{
		"app_name":                    true,
		"app_description":             true,
		"max_questions_per_quiz":      true,
		"enable_timer":                true,
		"timer_duration":              true,
		"show_explanations":           true,
		"allow_guest_play":            true,
		"maintenance_mode":            true,
		"adaptive_difficulty_enabled": true,
		"difficulty_threshold_easy":   true,
		"difficulty_threshold_hard":   true,
	}
	for k := range update {
		if !known[k] {
			return fmt.Errorf("unknown setting %q", k)
		}
	}
	if len(update) == 0 {
		return fmt.Errorf("empty settings update")
	}
	return s.Store.Update(ctx, update)
}
