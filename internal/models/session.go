package models

import "time"

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionAbandoned  = "abandoned"
)

// QuizResultSummary is emitted when a session reaches the completed state.
type QuizResultSummary struct {
	Score           int    `bson:"score" json:"score"`
	Total           int    `bson:"total" json:"total"`
	Percentage      int    `bson:"percentage" json:"percentage"`
	FinalDifficulty string `bson:"final_difficulty" json:"finalDifficulty"`
	Category        string `bson:"category" json:"category"`
	Answers         []*int `bson:"answers" json:"answers"`
}

// QuizSession is one quiz run. Questions are snapshotted at start so an
// in-progress session never re-fetches mid-run.
type QuizSession struct {
	ID           string             `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"userId"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Questions    []Question         `bson:"questions" json:"questions"`
	CurrentIndex int                `bson:"current_index" json:"currentIndex"`
	CorrectCount int                `bson:"correct_count" json:"correctCount"`
	Answers      []*int             `bson:"answers" json:"answers"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	UsedFallback bool               `bson:"used_fallback" json:"usedFallback"`
	StartedAt    time.Time          `bson:"started_at" json:"startedAt"`
	CompletedAt  time.Time          `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	Summary      *QuizResultSummary `bson:"summary,omitempty" json:"summary,omitempty"`
}

// CurrentQuestion returns the question awaiting an answer, or nil when the
// session is past its last question.
func (s *QuizSession) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}
