package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"quizmaster-service/internal/models"
)

// Resolver answers tutor chat messages. It walks the configured providers
// in priority order and falls back to the rule-based generator when none
// of them produce a reply, so chat always returns something.
type Resolver struct {
	providers []Provider
	timeout   time.Duration
}

func NewResolver(providers []Provider, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Resolver{providers: providers, timeout: timeout}
}

// Respond resolves one chat message. The returned source names who produced
// the reply: a provider name, or "rules" for the built-in generator.
func (r *Resolver) Respond(ctx context.Context, message string, user *models.User, attempts []models.QuizAttempt) (reply string, source string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("tutor: provider panic recovered: %v", rec)
			reply = StaticResponse(message, user, attempts)
			source = "rules"
		}
	}()

	systemPrompt := BuildSystemPrompt(user, attempts)
	for _, provider := range r.providers {
		if !provider.Configured() {
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		text, err := provider.Generate(callCtx, systemPrompt, message)
		cancel()
		if err != nil {
			log.Printf("tutor: %s failed, trying next provider: %v", provider.Name(), err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			log.Printf("tutor: %s returned an empty reply, trying next provider", provider.Name())
			continue
		}
		return text, provider.Name()
	}
	return StaticResponse(message, user, attempts), "rules"
}

// BuildSystemPrompt renders the tutor persona plus a snapshot of the
// student's performance so the model can personalize its answer.
func BuildSystemPrompt(user *models.User, attempts []models.QuizAttempt) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI learning tutor for a quiz platform. ")
	b.WriteString("Give encouraging, specific study advice grounded in the student's actual performance. ")
	b.WriteString("Keep replies concise and actionable.\n\n")

	if user != nil {
		fmt.Fprintf(&b, "Student profile:\n")
		fmt.Fprintf(&b, "- Name: %s\n", user.Name)
		fmt.Fprintf(&b, "- Quizzes taken: %d\n", user.QuizzesTaken)
		fmt.Fprintf(&b, "- Average score: %d%%\n", user.AverageScore)
		fmt.Fprintf(&b, "- Current streak: %d days\n", user.Streak)
		fmt.Fprintf(&b, "- Total points: %d\n", user.TotalPoints)
		fmt.Fprintf(&b, "- Level: %d\n", user.Level)
	} else {
		b.WriteString("Student profile: unknown (guest or new user).\n")
	}

	if len(attempts) > 0 {
		b.WriteString("\nRecent quiz attempts (most recent first):\n")
		limit := len(attempts)
		if limit > 5 {
			limit = 5
		}
		for _, attempt := range attempts[:limit] {
			fmt.Fprintf(&b, "- %s: %d%% (%d questions, %s difficulty)\n",
				attempt.Category, attempt.Score, attempt.TotalQuestions, attempt.Difficulty)
		}
	}
	return b.String()
}
