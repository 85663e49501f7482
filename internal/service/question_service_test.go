package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeQuestionStore struct {
	questions []models.Question
	nextID    int
}

func (f *fakeQuestionStore) Find(ctx context.Context, category, difficulty string, limit int64) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.Deleted {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id && !f.questions[i].Deleted {
			return &f.questions[i], nil
		}
	}
	return nil, errors.New("question not found")
}

func (f *fakeQuestionStore) Insert(ctx context.Context, question *models.Question) (string, error) {
	f.nextID++
	question.ID = fmt.Sprintf("q-%d", f.nextID)
	f.questions = append(f.questions, *question)
	return question.ID, nil
}

func (f *fakeQuestionStore) Update(ctx context.Context, id string, update bson.M) error {
	return nil
}

func (f *fakeQuestionStore) SoftDelete(ctx context.Context, id string) error {
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions[i].Deleted = true
			return nil
		}
	}
	return errors.New("question not found")
}

func (f *fakeQuestionStore) BulkInsert(ctx context.Context, questions []models.Question) error {
	f.questions = append(f.questions, questions...)
	return nil
}

func (f *fakeQuestionStore) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, q := range f.questions {
		if !q.Deleted && !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out, nil
}

func validQuestion() models.Question {
	return models.Question{
		Question:      "What is 2 + 2?",
		Options:       []string{"3", "4", "5", "6"},
		CorrectAnswer: 1,
		Difficulty:    models.DifficultyEasy,
		Category:      "Math",
		Explanation:   "Basic addition.",
	}
}

func TestCreateQuestion_RejectsInvalid(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	cases := []struct {
		name   string
		mutate func(*models.Question)
	}{
		{"empty text", func(q *models.Question) { q.Question = "" }},
		{"single option", func(q *models.Question) { q.Options = []string{"only"} }},
		{"blank option", func(q *models.Question) { q.Options[2] = "  " }},
		{"answer index out of range", func(q *models.Question) { q.CorrectAnswer = 4 }},
		{"negative answer index", func(q *models.Question) { q.CorrectAnswer = -1 }},
		{"unknown difficulty", func(q *models.Question) { q.Difficulty = "extreme" }},
		{"empty category", func(q *models.Question) { q.Category = "" }},
	}
	for _, tc := range cases {
		q := validQuestion()
		tc.mutate(&q)
		if _, err := svc.CreateQuestion(context.Background(), &q); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
	if len(store.questions) != 0 {
		t.Errorf("Invalid questions reached the store: %d", len(store.questions))
	}
}

func TestCreateQuestion_AcceptsValid(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	q := validQuestion()
	id, err := svc.CreateQuestion(context.Background(), &q)
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if id == "" {
		t.Error("Expected an assigned ID")
	}
}

func TestUpdateQuestion_ValidatesMergedResult(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	q := validQuestion()
	q.CorrectAnswer = 3
	id, _ := svc.CreateQuestion(context.Background(), &q)

	// JSON bodies carry numbers as float64.
	if err := svc.UpdateQuestion(context.Background(), id, bson.M{"correct_answer": float64(9)}); err == nil {
		t.Error("Expected rejection of an out-of-range answer index")
	}

	// Shrinking the option list strands the stored answer index at 3.
	if err := svc.UpdateQuestion(context.Background(), id, bson.M{"options": []any{"yes", "no"}}); err == nil {
		t.Error("Expected rejection when the merged answer index exceeds the new options")
	}

	if err := svc.UpdateQuestion(context.Background(), id, bson.M{"created_at": "2020-01-01"}); err == nil {
		t.Error("Expected rejection of a non-editable field")
	}

	if err := svc.UpdateQuestion(context.Background(), id, bson.M{"difficulty": "bananas"}); err == nil {
		t.Error("Expected rejection of an unknown difficulty")
	}

	update := bson.M{
		"options":        []any{"yes", "no"},
		"correct_answer": float64(0),
		"question":       "Is the sky blue?",
	}
	if err := svc.UpdateQuestion(context.Background(), id, update); err != nil {
		t.Errorf("Consistent update rejected: %v", err)
	}
}

func TestBulkImport_AbortsWholeBatchOnOneBadRecord(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	bad := validQuestion()
	bad.CorrectAnswer = 9
	batch := []models.Question{validQuestion(), bad, validQuestion()}

	if err := svc.BulkImport(context.Background(), batch); err == nil {
		t.Fatal("Expected the batch to be rejected")
	}
	if len(store.questions) != 0 {
		t.Errorf("Partial import happened: %d questions stored", len(store.questions))
	}
}

func TestBulkImport_EmptyBatchRejected(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{})
	if err := svc.BulkImport(context.Background(), nil); err == nil {
		t.Error("Expected rejection of an empty batch")
	}
}

func TestRandom_RespectsCountAndCategory(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	for i := 0; i < 20; i++ {
		q := validQuestion()
		if i%2 == 0 {
			q.Category = "Science"
		}
		store.Insert(context.Background(), &q)
	}

	picked, err := svc.Random(context.Background(), 5, "Science")
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if len(picked) != 5 {
		t.Errorf("Expected 5 questions, got %d", len(picked))
	}
	for _, q := range picked {
		if q.Category != "Science" {
			t.Errorf("Category filter leaked: got %s", q.Category)
		}
	}
}

func TestDeleteQuestion_SoftDeleteHidesFromListing(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	q := validQuestion()
	id, _ := svc.CreateQuestion(context.Background(), &q)

	if err := svc.DeleteQuestion(context.Background(), id); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	listed, _ := svc.ListQuestions(context.Background(), "", "", 0)
	for _, item := range listed {
		if item.ID == id {
			t.Error("Soft-deleted question still listed")
		}
	}
}
