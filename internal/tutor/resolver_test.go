package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quizmaster-service/internal/models"
)

type stubProvider struct {
	name       string
	configured bool
	reply      string
	err        error
	panics     bool
	calls      int
}

func (s *stubProvider) Name() string     { return s.name }
func (s *stubProvider) Configured() bool { return s.configured }

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	if s.panics {
		panic("provider blew up")
	}
	return s.reply, s.err
}

func TestRespond_FirstConfiguredProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", configured: true, reply: "from first"}
	second := &stubProvider{name: "second", configured: true, reply: "from second"}
	resolver := NewResolver([]Provider{first, second}, time.Second)

	reply, source := resolver.Respond(context.Background(), "help me study", nil, nil)
	if reply != "from first" || source != "first" {
		t.Errorf("Got reply=%q source=%q", reply, source)
	}
	if second.calls != 0 {
		t.Error("Second provider must not be called when the first succeeds")
	}
}

func TestRespond_SkipsUnconfiguredProviders(t *testing.T) {
	first := &stubProvider{name: "first", configured: false, reply: "never"}
	second := &stubProvider{name: "second", configured: true, reply: "from second"}
	resolver := NewResolver([]Provider{first, second}, time.Second)

	reply, source := resolver.Respond(context.Background(), "help", nil, nil)
	if reply != "from second" || source != "second" {
		t.Errorf("Got reply=%q source=%q", reply, source)
	}
	if first.calls != 0 {
		t.Error("Unconfigured provider must not be invoked")
	}
}

func TestRespond_FallsThroughOnError(t *testing.T) {
	first := &stubProvider{name: "first", configured: true, err: errors.New("rate limited")}
	second := &stubProvider{name: "second", configured: true, reply: "from second"}
	resolver := NewResolver([]Provider{first, second}, time.Second)

	reply, source := resolver.Respond(context.Background(), "help", nil, nil)
	if reply != "from second" || source != "second" {
		t.Errorf("Got reply=%q source=%q", reply, source)
	}
	if first.calls != 1 {
		t.Errorf("First provider should have been tried once, got %d", first.calls)
	}
}

func TestRespond_EmptyReplyFallsThrough(t *testing.T) {
	first := &stubProvider{name: "first", configured: true, reply: "   "}
	second := &stubProvider{name: "second", configured: true, reply: "real answer"}
	resolver := NewResolver([]Provider{first, second}, time.Second)

	reply, source := resolver.Respond(context.Background(), "help", nil, nil)
	if reply != "real answer" || source != "second" {
		t.Errorf("Got reply=%q source=%q", reply, source)
	}
}

func TestRespond_AllProvidersFailUsesRules(t *testing.T) {
	first := &stubProvider{name: "first", configured: true, err: errors.New("down")}
	second := &stubProvider{name: "second", configured: true, err: errors.New("also down")}
	resolver := NewResolver([]Provider{first, second}, time.Second)

	user := &models.User{ID: "u", QuizzesTaken: 3, AverageScore: 80}
	reply, source := resolver.Respond(context.Background(), "hello", user, nil)
	if source != "rules" {
		t.Errorf("Expected the rule fallback, got source=%q", source)
	}
	if reply != StaticResponse("hello", user, nil) {
		t.Errorf("Fallback reply diverged from the rule engine: %q", reply)
	}
}

func TestRespond_NoProvidersUsesRules(t *testing.T) {
	resolver := NewResolver(nil, time.Second)

	reply, source := resolver.Respond(context.Background(), "what topics should I study next", nil, nil)
	if source != "rules" || reply == "" {
		t.Errorf("Got reply=%q source=%q", reply, source)
	}
}

func TestRespond_ProviderPanicRecovered(t *testing.T) {
	bad := &stubProvider{name: "bad", configured: true, panics: true}
	resolver := NewResolver([]Provider{bad}, time.Second)

	reply, source := resolver.Respond(context.Background(), "hi", nil, nil)
	if source != "rules" || reply == "" {
		t.Errorf("Panic must degrade to the rule engine, got reply=%q source=%q", reply, source)
	}
}

func TestBuildSystemPrompt_CarriesStatsAndAttempts(t *testing.T) {
	user := &models.User{Name: "Alex", QuizzesTaken: 4, AverageScore: 75, Streak: 3, TotalPoints: 30, Level: 2}
	attempts := []models.QuizAttempt{
		{Category: "Math", Score: 80, TotalQuestions: 10, Difficulty: "medium"},
		{Category: "Science", Score: 70, TotalQuestions: 10, Difficulty: "easy"},
	}
	prompt := BuildSystemPrompt(user, attempts)

	for _, want := range []string{"Alex", "Quizzes taken: 4", "Average score: 75%", "Math: 80%", "Science: 70%"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildSystemPrompt_LimitsAttemptHistory(t *testing.T) {
	attempts := make([]models.QuizAttempt, 8)
	for i := range attempts {
		attempts[i] = models.QuizAttempt{Category: "Math", Score: 50 + i, TotalQuestions: 10, Difficulty: "medium"}
	}
	prompt := BuildSystemPrompt(nil, attempts)

	if count := strings.Count(prompt, "Math:"); count != 5 {
		t.Errorf("Expected at most 5 attempt lines, got %d", count)
	}
}

func TestProviderKeyValidation(t *testing.T) {
	if NewOpenAIProvider("").Configured() {
		t.Error("Empty key must not count as configured")
	}
	if NewOpenAIProvider("wrong-prefix").Configured() {
		t.Error("OpenAI keys must start with sk-")
	}
	if !NewOpenAIProvider("sk-test123").Configured() {
		t.Error("sk- prefixed key should be accepted")
	}
	if NewAnthropicProvider("sk-test123").Configured() {
		t.Error("Anthropic keys must start with sk-ant-")
	}
	if !NewAnthropicProvider("sk-ant-test123").Configured() {
		t.Error("sk-ant- prefixed key should be accepted")
	}
	if !NewTogetherProvider("sk-test123").Configured() {
		t.Error("Together keys use the sk- prefix")
	}
}
