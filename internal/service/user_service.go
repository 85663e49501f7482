package service

import (
	"context"
	"fmt"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type UserService struct {
	Users    UserStore
	Attempts AttemptStore
	Progress ProgressStore
}

func NewUserService(users UserStore, attempts AttemptStore, progress ProgressStore) *UserService {
	return &UserService{Users: users, Attempts: attempts, Progress: progress}
}

// Register creates a user record at sign-up with zeroed aggregates.
func (s *UserService) Register(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return fmt.Errorf("email is required")
	}
	if user.Name == "" {
		return fmt.Errorf("name is required")
	}
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if user.Role != models.RoleStudent && user.Role != models.RoleAdmin {
		return fmt.Errorf("invalid role %q", user.Role)
	}
	if user.Level == 0 {
		user.Level = 1
	}
	if user.FavoriteCategories == nil {
		user.FavoriteCategories = []string{}
	}
	if user.Achievements == nil {
		user.Achievements = []string{}
	}
	return s.Users.Create(ctx, user)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.FindByID(ctx, id)
}

// UpdateProfile merges the profile fields a user may edit themselves.
// Aggregate fields (points, averages, counters) are owned by the progress
// aggregator and are not accepted here.
func (s *UserService) UpdateProfile(ctx context.Context, id string, update bson.M) error {
	allowed := map[string]bool{
		"name":                true,
		"bio":                 true,
		"location":            true,
		"favorite_categories": true,
	}
	filtered := bson.M{}
	for k, v := range update {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return fmt.Errorf("no editable fields in update")
	}
	return s.Users.MergeUpdate(ctx, id, filtered)
}

func (s *UserService) Leaderboard(ctx context.Context, limit int64) ([]models.User, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Users.FindTop(ctx, limit)
}

func (s *UserService) UserProgress(ctx context.Context, userID string) ([]models.UserProgress, error) {
	return s.Progress.FindByUser(ctx, userID)
}

func (s *UserService) UserAttempts(ctx context.Context, userID string, limit int64) ([]models.QuizAttempt, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.Attempts.FindByUser(ctx, userID, limit)
}
