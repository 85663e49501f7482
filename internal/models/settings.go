package models

// AppSettings is the process-wide configuration record, stored as a
// singleton document. The session engine reads it to parameterize a run.
type AppSettings struct {
	AppName                   string `bson:"app_name" json:"appName"`
	AppDescription            string `bson:"app_description" json:"appDescription"`
	MaxQuestionsPerQuiz       int    `bson:"max_questions_per_quiz" json:"maxQuestionsPerQuiz"`
	EnableTimer               bool   `bson:"enable_timer" json:"enableTimer"`
	TimerDuration             int    `bson:"timer_duration" json:"timerDuration"`
	ShowExplanations          bool   `bson:"show_explanations" json:"showExplanations"`
	AllowGuestPlay            bool   `bson:"allow_guest_play" json:"allowGuestPlay"`
	MaintenanceMode           bool   `bson:"maintenance_mode" json:"maintenanceMode"`
	AdaptiveDifficultyEnabled bool   `bson:"adaptive_difficulty_enabled" json:"adaptiveDifficultyEnabled"`
	DifficultyThresholdEasy   int    `bson:"difficulty_threshold_easy" json:"difficultyThresholdEasy"`
	DifficultyThresholdHard   int    `bson:"difficulty_threshold_hard" json:"difficultyThresholdHard"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		AppName:                   "QuizMaster",
		AppDescription:            "An interactive quiz application for learning and fun",
		MaxQuestionsPerQuiz:       10,
		EnableTimer:               false,
		TimerDuration:             30,
		ShowExplanations:          true,
		AllowGuestPlay:            true,
		MaintenanceMode:           false,
		AdaptiveDifficultyEnabled: true,
		DifficultyThresholdEasy:   50,
		DifficultyThresholdHard:   80,
	}
}
