package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Question      string    `bson:"question" json:"question"`
	Options       []string  `bson:"options" json:"options"`
	CorrectAnswer int       `bson:"correct_answer" json:"correctAnswer"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	Category      string    `bson:"category" json:"category"`
	Explanation   string    `bson:"explanation" json:"explanation"`
	Deleted       bool      `bson:"deleted,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Validate rejects malformed questions before they reach the store.
func (q *Question) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("at least 2 options are required, got %d", len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct answer index %d out of range [0, %d)", q.CorrectAnswer, len(q.Options))
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("invalid difficulty %q", q.Difficulty)
	}
	if q.Category == "" {
		return fmt.Errorf("category is required")
	}
	if q.Explanation == "" {
		return fmt.Errorf("explanation is required")
	}
	return nil
}
