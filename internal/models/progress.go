package models

import "time"

// UserProgress holds the running per-category aggregate for one user.
// One document per (user, category) pair, keyed "<userId>_<category>".
type UserProgress struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	Category      string    `bson:"category" json:"category"`
	TotalAttempts int       `bson:"total_attempts" json:"totalAttempts"`
	AverageScore  float64   `bson:"average_score" json:"averageScore"`
	BestScore     int       `bson:"best_score" json:"bestScore"`
	LastAttemptAt time.Time `bson:"last_attempt_at" json:"lastAttemptAt"`
}

func ProgressKey(userID, category string) string {
	return userID + "_" + category
}
