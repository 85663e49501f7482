package adaptive

// Level is the difficulty a session is currently serving.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Config holds the thresholds driving difficulty adjustment. Thresholds are
// percentages compared against the running accuracy after each answer.
type Config struct {
	Enabled       bool `json:"enabled"`
	EasyThreshold int  `json:"easy_threshold"`
	HardThreshold int  `json:"hard_threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		EasyThreshold: 50,
		HardThreshold: 80,
	}
}
