package service

import (
	"context"
	"fmt"
	"math/rand"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionStore is the slice of the document store the catalog needs.
// Satisfied by repository.QuestionRepository; tests substitute an in-memory
// fake.
type QuestionStore interface {
	Find(ctx context.Context, category, difficulty string, limit int64) ([]models.Question, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	Insert(ctx context.Context, question *models.Question) (string, error)
	Update(ctx context.Context, id string, update bson.M) error
	SoftDelete(ctx context.Context, id string) error
	BulkInsert(ctx context.Context, questions []models.Question) error
	Categories(ctx context.Context) ([]string, error)
}

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

func (s *QuestionService) ListQuestions(ctx context.Context, category, difficulty string, limit int64) ([]models.Question, error) {
	return s.Store.Find(ctx, category, difficulty, limit)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Store.FindByID(ctx, id)
}

func (s *QuestionService) Categories(ctx context.Context) ([]string, error) {
	return s.Store.Categories(ctx)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) (string, error) {
	if err := question.Validate(); err != nil {
		return "", err
	}
	return s.Store.Insert(ctx, question)
}

// UpdateQuestion merges the editable fields into the stored question and
// validates the result, so an update cannot leave the catalog with an
// answer index pointing outside the option list.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	existing, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	merged := *existing
	for k, v := range update {
		switch k {
		case "question":
			merged.Question, err = asString(k, v)
		case "options":
			merged.Options, err = asStringSlice(k, v)
		case "correct_answer":
			merged.CorrectAnswer, err = asInt(k, v)
		case "difficulty":
			merged.Difficulty, err = asString(k, v)
		case "category":
			merged.Category, err = asString(k, v)
		case "explanation":
			merged.Explanation, err = asString(k, v)
		default:
			return fmt.Errorf("field %q cannot be updated", k)
		}
		if err != nil {
			return err
		}
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	return s.Store.Update(ctx, id, update)
}

func asString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", field)
	}
	return s, nil
}

// asInt accepts the numeric types a JSON body or a bson document can carry.
func asInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("field %q must be a number", field)
}

func asStringSlice(field string, v any) ([]string, error) {
	switch items := v.(type) {
	case []string:
		return items, nil
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a list of strings", field)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("field %q must be a list of strings", field)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Store.SoftDelete(ctx, id)
}

// BulkImport validates every record up front and aborts the whole batch on
// the first invalid one; no partial import.
func (s *QuestionService) BulkImport(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("import batch is empty")
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return s.Store.BulkInsert(ctx, questions)
}

// Export returns the full catalog for a text round-trip.
func (s *QuestionService) Export(ctx context.Context) ([]models.Question, error) {
	return s.Store.Find(ctx, "", "", 0)
}

// Random samples count questions for a session, optionally scoped to one
// category. Fetches a wide slice and shuffles so repeated sessions see
// different question mixes.
func (s *QuestionService) Random(ctx context.Context, count int, category string) ([]models.Question, error) {
	questions, err := s.Store.Find(ctx, category, "", 1000)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}
