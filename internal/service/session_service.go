package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"quizmaster-service/internal/adaptive"
	"quizmaster-service/internal/models"
	"quizmaster-service/internal/seed"
)

type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.QuizSession, error)
	Create(ctx context.Context, session *models.QuizSession) error
	Save(ctx context.Context, session *models.QuizSession) error
}

// QuestionPicker supplies the question set for a new session.
type QuestionPicker interface {
	Random(ctx context.Context, count int, category string) ([]models.Question, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (models.AppSettings, error)
}

// AttemptRecorder receives the result summary of a completed session.
// Satisfied by ProgressService.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, attempt *models.QuizAttempt) error
}

// SessionService runs one quiz session: question set fetch with embedded
// fallback, answer scoring, difficulty adaptation, and the terminal results
// summary handed to the progress aggregator.
type SessionService struct {
	Sessions  SessionStore
	Questions QuestionPicker
	Settings  SettingsProvider
	Progress  AttemptRecorder
}

func NewSessionService(sessions SessionStore, questions QuestionPicker, settings SettingsProvider, progress AttemptRecorder) *SessionService {
	return &SessionService{
		Sessions:  sessions,
		Questions: questions,
		Settings:  settings,
		Progress:  progress,
	}
}

// Start creates a session for the user, optionally scoped to one category.
// A store fetch failure or an empty catalog falls back to the embedded
// built-in set so starting a quiz never surfaces a hard error. Only when
// the fallback itself has nothing for the category does the session
// complete immediately with an empty summary.
func (s *SessionService) Start(ctx context.Context, userID, category string) (*models.QuizSession, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		log.Printf("session: settings read failed, using defaults: %v", err)
		settings = models.DefaultSettings()
	}
	count := settings.MaxQuestionsPerQuiz
	if count <= 0 {
		count = 10
	}

	usedFallback := false
	questions, err := s.Questions.Random(ctx, count, category)
	if err != nil || len(questions) == 0 {
		if err != nil {
			log.Printf("session: question fetch failed, using fallback set: %v", err)
		} else {
			log.Printf("session: no questions available for category %q, using fallback set", category)
		}
		questions = seed.FallbackQuestions(category)
		usedFallback = true
	}

	session := &models.QuizSession{
		UserID:       userID,
		Category:     category,
		Status:       models.SessionInProgress,
		Questions:    questions,
		Answers:      make([]*int, len(questions)),
		Difficulty:   models.DifficultyMedium,
		UsedFallback: usedFallback,
		StartedAt:    time.Now(),
	}

	if len(questions) == 0 {
		// Nothing to serve, not even fallback entries for this category.
		// Terminate immediately rather than hanging an unstartable quiz.
		session.Status = models.SessionCompleted
		session.CompletedAt = session.StartedAt
		session.Summary = s.buildSummary(session)
	}

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*models.QuizSession, error) {
	return s.Sessions.FindByID(ctx, id)
}

// SubmitAnswer scores the selected option against the current question,
// updates the adaptive difficulty signal, and advances the session. The
// answer to the last question completes the session and commits the result
// to the progress aggregator.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, userID string, optionIndex int) (*models.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session %s does not belong to this user", sessionID)
	}
	if session.Status != models.SessionInProgress {
		return nil, fmt.Errorf("session %s is %s, not accepting answers", sessionID, session.Status)
	}
	question := session.CurrentQuestion()
	if question == nil {
		return nil, fmt.Errorf("session %s has no current question", sessionID)
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return nil, fmt.Errorf("option index %d out of range [0, %d)", optionIndex, len(question.Options))
	}

	answeredBefore := session.CurrentIndex
	if optionIndex == question.CorrectAnswer {
		session.CorrectCount++
	}
	selected := optionIndex
	session.Answers[session.CurrentIndex] = &selected

	settings, err := s.Settings.Get(ctx)
	if err != nil {
		settings = models.DefaultSettings()
	}
	manager := adaptive.NewManager(&adaptive.Config{
		Enabled:       settings.AdaptiveDifficultyEnabled,
		EasyThreshold: settings.DifficultyThresholdEasy,
		HardThreshold: settings.DifficultyThresholdHard,
	})
	session.Difficulty = string(manager.NextLevel(adaptive.Level(session.Difficulty), session.CorrectCount, answeredBefore))

	session.CurrentIndex++
	completed := session.CurrentIndex >= len(session.Questions)
	if completed {
		session.Status = models.SessionCompleted
		session.CompletedAt = time.Now()
		session.Summary = s.buildSummary(session)
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	if completed {
		s.recordAttempt(ctx, session)
	}
	return session, nil
}

// Abandon marks an in-progress session as walked away from. No attempt
// record is persisted for a partial run.
func (s *SessionService) Abandon(ctx context.Context, sessionID, userID string) error {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return fmt.Errorf("session %s does not belong to this user", sessionID)
	}
	if session.Status != models.SessionInProgress {
		return fmt.Errorf("session %s is already %s", sessionID, session.Status)
	}
	session.Status = models.SessionAbandoned
	return s.Sessions.Save(ctx, session)
}

// recordAttempt hands the completed run to the progress aggregator. Called
// only after the completed session is persisted, so a failed save can be
// retried without double-counting the attempt.
func (s *SessionService) recordAttempt(ctx context.Context, session *models.QuizSession) {
	answers := make([]int, 0, len(session.Answers))
	for _, a := range session.Answers {
		if a != nil {
			answers = append(answers, *a)
		}
	}
	attempt := &models.QuizAttempt{
		UserID:         session.UserID,
		Score:          session.Summary.Percentage,
		TotalQuestions: session.Summary.Total,
		Category:       session.Summary.Category,
		Difficulty:     session.Difficulty,
		Answers:        answers,
		TimeSpent:      int(session.CompletedAt.Sub(session.StartedAt).Seconds()),
	}
	// Aggregate write failure degrades to lagging stats; the user still
	// gets their result.
	if err := s.Progress.RecordAttempt(ctx, attempt); err != nil {
		log.Printf("session %s: recording attempt failed: %v", session.ID, err)
	}
}

func (s *SessionService) buildSummary(session *models.QuizSession) *models.QuizResultSummary {
	total := session.CurrentIndex
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(session.CorrectCount) / float64(total) * 100))
	}
	category := session.Category
	if category == "" {
		category = "General"
	}
	return &models.QuizResultSummary{
		Score:           session.CorrectCount,
		Total:           total,
		Percentage:      percentage,
		FinalDifficulty: session.Difficulty,
		Category:        category,
		Answers:         session.Answers,
	}
}
