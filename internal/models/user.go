package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	Email              string    `bson:"email" json:"email"`
	Name               string    `bson:"name" json:"name"`
	Role               string    `bson:"role" json:"role"`
	TotalPoints        int       `bson:"total_points" json:"totalPoints"`
	Level              int       `bson:"level" json:"level"`
	Streak             int       `bson:"streak" json:"streak"`
	QuizzesTaken       int       `bson:"quizzes_taken" json:"quizzesTaken"`
	AverageScore       int       `bson:"average_score" json:"averageScore"`
	FavoriteCategories []string  `bson:"favorite_categories" json:"favoriteCategories"`
	Achievements       []string  `bson:"achievements" json:"achievements"`
	Bio                string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location           string    `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
