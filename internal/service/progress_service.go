package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store slices the aggregator consumes. The concrete repositories satisfy
// them; tests inject in-memory fakes.
type AttemptStore interface {
	Append(ctx context.Context, attempt *models.QuizAttempt) (string, error)
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.QuizAttempt, error)
}

type ProgressStore interface {
	FindByKey(ctx context.Context, userID, category string) (*models.UserProgress, error)
	FindByUser(ctx context.Context, userID string) ([]models.UserProgress, error)
	Upsert(ctx context.Context, progress *models.UserProgress) error
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	MergeUpdate(ctx context.Context, id string, update bson.M) error
	FindTop(ctx context.Context, limit int64) ([]models.User, error)
}

// ProgressService maintains the per-category and per-user aggregates fed by
// completed quiz sessions.
type ProgressService struct {
	Attempts AttemptStore
	Progress ProgressStore
	Users    UserStore
}

func NewProgressService(attempts AttemptStore, progress ProgressStore, users UserStore) *ProgressService {
	return &ProgressService{Attempts: attempts, Progress: progress, Users: users}
}

// RecordAttempt commits one completed quiz run. The attempt log is appended
// first and is the source of truth; the progress and user aggregates are
// derived caches updated at most once per attempt. If an aggregate write
// fails the attempt record stands and the caches lag until the next run.
func (s *ProgressService) RecordAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	if attempt.Category == "" {
		attempt.Category = "General"
	}

	if _, err := s.Attempts.Append(ctx, attempt); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}

	if err := s.upsertCategoryProgress(ctx, attempt); err != nil {
		log.Printf("progress: category aggregate update failed for user %s: %v", attempt.UserID, err)
		return err
	}
	if err := s.updateUserStats(ctx, attempt); err != nil {
		log.Printf("progress: user aggregate update failed for user %s: %v", attempt.UserID, err)
		return err
	}
	return nil
}

func (s *ProgressService) upsertCategoryProgress(ctx context.Context, attempt *models.QuizAttempt) error {
	existing, err := s.Progress.FindByKey(ctx, attempt.UserID, attempt.Category)
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}

	progress := &models.UserProgress{
		UserID:        attempt.UserID,
		Category:      attempt.Category,
		TotalAttempts: 1,
		AverageScore:  float64(attempt.Score),
		BestScore:     attempt.Score,
		LastAttemptAt: time.Now(),
	}
	if existing != nil {
		newTotal := existing.TotalAttempts + 1
		progress.TotalAttempts = newTotal
		// Incremental mean, weighted by the previous attempt count.
		progress.AverageScore = (existing.AverageScore*float64(existing.TotalAttempts) + float64(attempt.Score)) / float64(newTotal)
		progress.BestScore = existing.BestScore
		if attempt.Score > progress.BestScore {
			progress.BestScore = attempt.Score
		}
	}
	return s.Progress.Upsert(ctx, progress)
}

func (s *ProgressService) updateUserStats(ctx context.Context, attempt *models.QuizAttempt) error {
	user, err := s.Users.FindByID(ctx, attempt.UserID)
	if err != nil {
		return err
	}

	newQuizzesTaken := user.QuizzesTaken + 1
	newAverage := int(math.Round((float64(user.AverageScore)*float64(user.QuizzesTaken) + float64(attempt.Score)) / float64(newQuizzesTaken)))
	pointsEarned := attempt.Score / 10

	return s.Users.MergeUpdate(ctx, user.ID, bson.M{
		"quizzes_taken": newQuizzesTaken,
		"average_score": newAverage,
		"total_points":  user.TotalPoints + pointsEarned,
	})
}
