package models

import "time"

// QuizAttempt is an append-only log entry, one per completed session.
type QuizAttempt struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"userId"`
	Score          int       `bson:"score" json:"score"`
	TotalQuestions int       `bson:"total_questions" json:"totalQuestions"`
	Category       string    `bson:"category" json:"category"`
	Difficulty     string    `bson:"difficulty" json:"difficulty"`
	Answers        []int     `bson:"answers" json:"answers"`
	TimeSpent      int       `bson:"time_spent" json:"timeSpent"`
	CompletedAt    time.Time `bson:"completed_at" json:"completedAt"`
}
