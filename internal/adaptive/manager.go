package adaptive

// Manager adjusts quiz difficulty from running answer accuracy.
type Manager struct {
	config *Config
}

func NewManager(config *Config) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &Manager{config: config}
}

// RunningAccuracy computes the percentage signal the thresholds are compared
// against. correctCount counts the answer just scored; answeredBefore does
// not. The extra +1 on both sides credits one pseudo-correct answer, which
// biases the signal upward early in a session. Kept as-is for behavioral
// compatibility with existing sessions.
func (m *Manager) RunningAccuracy(correctCount, answeredBefore int) float64 {
	return float64(correctCount+1) / float64(answeredBefore+1) * 100
}

// NextLevel returns the difficulty to serve after an answer. Escalates to
// hard at or above the hard threshold, de-escalates to easy below the easy
// threshold, and leaves the level untouched in the middle band.
func (m *Manager) NextLevel(current Level, correctCount, answeredBefore int) Level {
	if !m.config.Enabled {
		return current
	}
	accuracy := m.RunningAccuracy(correctCount, answeredBefore)
	if accuracy >= float64(m.config.HardThreshold) && current != LevelHard {
		return LevelHard
	}
	if accuracy < float64(m.config.EasyThreshold) && current != LevelEasy {
		return LevelEasy
	}
	return current
}
