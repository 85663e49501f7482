package tutor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"quizmaster-service/internal/models"
)

// categoryStats accumulates per-category performance from the attempt
// history. recent holds scores from the 5 most-recent attempts only.
type categoryStats struct {
	category string
	total    int
	count    int
	recent   []int
}

func (c *categoryStats) average() float64 {
	if c.count == 0 {
		return 0
	}
	return float64(c.total) / float64(c.count)
}

func (c *categoryStats) recentAverage() float64 {
	if len(c.recent) == 0 {
		return 0
	}
	sum := 0
	for _, s := range c.recent {
		sum += s
	}
	return float64(sum) / float64(len(c.recent))
}

// analyzeCategories walks attempts (most recent first) and groups scores by
// category. Categories keep first-seen order so repeated calls produce the
// same ranking for equal inputs.
func analyzeCategories(attempts []models.QuizAttempt) []*categoryStats {
	byName := map[string]*categoryStats{}
	var ordered []*categoryStats
	for i, attempt := range attempts {
		cs, ok := byName[attempt.Category]
		if !ok {
			cs = &categoryStats{category: attempt.Category}
			byName[attempt.Category] = cs
			ordered = append(ordered, cs)
		}
		cs.total += attempt.Score
		cs.count++
		if i < 5 {
			cs.recent = append(cs.recent, attempt.Score)
		}
	}
	return ordered
}

// weakestCategory picks the single category to recommend: any category with
// lifetime or recent average below 70, ordered by recent average when
// available, else lifetime average, ascending. Returns nil when the user
// has no weak categories.
func weakestCategory(stats []*categoryStats) *categoryStats {
	var weak []*categoryStats
	for _, cs := range stats {
		if cs.average() < 70 || cs.recentAverage() < 70 {
			weak = append(weak, cs)
		}
	}
	if len(weak) == 0 {
		return nil
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return sortKey(weak[i]) < sortKey(weak[j])
	})
	return weak[0]
}

func sortKey(cs *categoryStats) float64 {
	if r := cs.recentAverage(); r > 0 {
		return r
	}
	return cs.average()
}

// StaticResponse is the deterministic rule-based reply generator used when
// no language-model provider is configured or all of them fail. Pure
// function of its inputs; the first matching intent wins.
func StaticResponse(message string, user *models.User, attempts []models.QuizAttempt) string {
	if message == "" {
		return "Hello! I'm your AI learning tutor. I can help you with explanations, study tips, course recommendations, and learning strategies. What would you like help with today?"
	}

	lower := strings.ToLower(message)

	totalQuizzes := 0
	averageScore := 0
	currentStreak := 0
	totalPoints := 0
	if user != nil {
		totalQuizzes = user.QuizzesTaken
		averageScore = user.AverageScore
		currentStreak = user.Streak
		totalPoints = user.TotalPoints
	}

	if strings.Contains(lower, "hi") || strings.Contains(lower, "hello") || strings.Contains(lower, "hey") {
		if totalQuizzes == 0 {
			return "Welcome to your learning journey! I'm here to help you succeed. You haven't taken any quizzes yet - would you like to start with a general knowledge quiz to get familiar with the platform?"
		}
		return fmt.Sprintf("Hello! Great to see you back! With %d quizzes completed and a %d%% average, you're doing fantastic! How can I help you with your learning today?", totalQuizzes, averageScore)
	}

	stats := analyzeCategories(attempts)

	if strings.Contains(lower, "improve") && strings.Contains(lower, "math") {
		mathTotal, mathCount := 0, 0
		for _, attempt := range attempts {
			if strings.Contains(strings.ToLower(attempt.Category), "math") {
				mathTotal += attempt.Score
				mathCount++
			}
		}
		mathAverage := float64(averageScore)
		if mathCount > 0 {
			mathAverage = float64(mathTotal) / float64(mathCount)
		}
		return fmt.Sprintf("To improve your math scores, I recommend:\n\n"+
			"1. **Focus on fundamentals** - Review basic concepts before moving to advanced topics\n"+
			"2. **Practice regularly** - Solve 5-10 problems daily\n"+
			"3. **Understand, don't memorize** - Make sure you understand the 'why' behind each formula\n"+
			"4. **Use our adaptive quizzes** - They adjust to your level automatically\n\n"+
			"Based on your %d quizzes with %d%% math average, you're doing great! Would you like me to recommend specific math topics to focus on?",
			totalQuizzes, int(math.Round(mathAverage)))
	}

	if strings.Contains(lower, "what topics") || strings.Contains(lower, "study next") {
		if weak := weakestCategory(stats); weak != nil {
			recentScore := int(math.Round(weak.recentAverage()))
			if recentScore == 0 {
				recentScore = int(math.Round(weak.average()))
			}
			return fmt.Sprintf("Based on your recent performance (%d quizzes, %d%% average), I recommend studying these topics next:\n\n"+
				"1. **%s** - Your recent average is %d%% (%d attempts). Focus here first!\n"+
				"2. **Practice regularly** - Take daily quizzes to improve\n"+
				"3. **Review explanations** - Pay attention to the detailed explanations after each quiz\n\n"+
				"Would you like to start a quiz in %s?",
				totalQuizzes, averageScore, weak.category, recentScore, weak.count, weak.category)
		}
		return fmt.Sprintf("Based on your excellent performance (%d quizzes, %d%% average), I recommend:\n\n"+
			"1. **Challenge yourself** - Try expert-level quizzes\n"+
			"2. **Explore new categories** - Branch out to subjects you haven't tried\n"+
			"3. **Maintain consistency** - Keep your %d-day streak going!\n\n"+
			"What category interests you most?",
			totalQuizzes, averageScore, currentStreak)
	}

	if strings.Contains(lower, "quantum") || strings.Contains(lower, "physics") {
		return fmt.Sprintf("**Quantum Mechanics Explained Simply:**\n\n"+
			"Quantum mechanics is the science of the very small - atoms and subatomic particles. Here are key concepts:\n\n"+
			"- **Superposition** - Particles can exist in multiple states simultaneously until observed\n"+
			"- **Entanglement** - Particles can be mysteriously connected across distances\n"+
			"- **Wave-particle duality** - Things can behave like both waves and particles\n\n"+
			"It's counterintuitive but amazing! With your %d%% average across %d quizzes, you're well-prepared to explore this further with our quantum mechanics course?",
			averageScore, totalQuizzes)
	}

	if strings.Contains(lower, "streak") {
		// Streak derived from distinct days among the last 10 attempts.
		seen := map[string]bool{}
		limit := len(attempts)
		if limit > 10 {
			limit = 10
		}
		for _, attempt := range attempts[:limit] {
			seen[attempt.CompletedAt.Format("2006-01-02")] = true
		}
		actualStreak := len(seen)
		suffix := " - start today!"
		if actualStreak > 0 {
			suffix = " - keep it up!"
		}
		return fmt.Sprintf("Great question! Here are tips to maintain your learning streak:\n\n"+
			"1. **Set a daily goal** - Even 15-20 minutes counts\n"+
			"2. **Schedule learning time** - Make it part of your routine\n"+
			"3. **Start with easier quizzes** - Build momentum gradually\n"+
			"4. **Take a break if needed** - Rest is part of learning\n"+
			"5. **Share your goal** - Tell friends about your streak for motivation\n\n"+
			"You're currently on a %d-day streak%s", actualStreak, suffix)
	}

	if strings.Contains(lower, "study") && (strings.Contains(lower, "strategy") || strings.Contains(lower, "technique") || strings.Contains(lower, "method")) {
		return fmt.Sprintf("Excellent question! Here are proven study strategies to boost your learning:\n\n"+
			"**Active Recall**\n- Test yourself on material before looking at answers\n- Use flashcards or quiz yourself regularly\n\n"+
			"**Spaced Repetition**\n- Review material at increasing intervals (1 day, 3 days, 1 week, etc.)\n- Our platform uses this automatically!\n\n"+
			"**Focused Sessions**\n- Use the Pomodoro technique: 25 minutes study + 5 minute break\n- Avoid multitasking - focus on one topic at a time\n\n"+
			"**Active Learning**\n- Take notes in your own words\n- Teach concepts to someone else (or imagine teaching)\n- Create mind maps and diagrams\n\n"+
			"Based on your %d quizzes with %d%% average, I'd recommend starting with active recall techniques. What specific subject are you working on?",
			totalQuizzes, averageScore)
	}

	if strings.Contains(lower, "how am i doing") || strings.Contains(lower, "my progress") {
		recentTotal, recentCount := 0, 0
		limit := len(attempts)
		if limit > 5 {
			limit = 5
		}
		for _, attempt := range attempts[:limit] {
			recentTotal += attempt.Score
			recentCount++
		}
		recentAverage := 0.0
		if recentCount > 0 {
			recentAverage = float64(recentTotal) / float64(recentCount)
		}
		improvement := "steady"
		if recentAverage > float64(averageScore) {
			improvement = "improving"
		} else if recentAverage < float64(averageScore) {
			improvement = "needs attention"
		}

		var analysis string
		switch {
		case averageScore >= 85:
			analysis = "Outstanding! You're performing at an expert level."
		case averageScore >= 75:
			analysis = "Excellent work! You're performing at a high level."
		case averageScore >= 60:
			analysis = "Good progress! Keep practicing to reach the next level."
		default:
			analysis = "You're on the right track! Focus on understanding concepts and regular practice."
		}

		return fmt.Sprintf("Let's review your progress!\n\n**Your Stats:**\n"+
			"- Total Quizzes: %d\n- Average Score: %d%%\n- Recent Performance: %d%% (last 5 quizzes)\n"+
			"- Current Streak: %d days\n- Total Points: %d\n\n"+
			"**Performance Analysis:**\n%s\n\n"+
			"**Trend:** Your recent scores are %s compared to your overall average.\n\n"+
			"Would you like specific recommendations for improvement?",
			totalQuizzes, averageScore, int(math.Round(recentAverage)), currentStreak, totalPoints, analysis, improvement)
	}

	// Generic fallback: enumerate contextual suggestions from simple
	// threshold checks.
	var helpTopics []string
	if totalQuizzes < 5 {
		helpTopics = append(helpTopics, "getting started with quizzes")
	}
	if averageScore < 70 {
		helpTopics = append(helpTopics, "improving your scores")
	}
	if currentStreak < 3 {
		helpTopics = append(helpTopics, "building a learning streak")
	}
	if len(stats) < 3 {
		helpTopics = append(helpTopics, "exploring new subjects")
	}

	helpText := "I can help with study recommendations, explanations, and learning strategies."
	if len(helpTopics) > 0 {
		helpText = fmt.Sprintf("Based on your progress, I can help with: %s.", strings.Join(helpTopics, ", "))
	}

	return fmt.Sprintf("That's a great question! I'm here to help you succeed. %s\n\n"+
		"Here's what I can assist with:\n\n"+
		"- **Study recommendations** based on your performance (%d quizzes completed, %d%% average)\n"+
		"- **Explanations** of difficult concepts\n"+
		"- **Tips** for improving your scores\n"+
		"- **Course suggestions** tailored to your interests\n"+
		"- **Learning strategies** to optimize your study time\n\n"+
		"What would you like help with today?",
		helpText, totalQuizzes, averageScore)
}
