package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Provider is one external language-model completion service. The resolver
// walks an ordered list of these and stops at the first success.
type Provider interface {
	Name() string
	// Configured reports whether a syntactically valid credential is
	// present. Unconfigured providers are skipped without any network I/O.
	Configured() bool
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// openAICompatible talks the chat-completions wire format shared by OpenAI
// and Together.
type openAICompatible struct {
	name      string
	baseURL   string
	apiKey    string
	keyPrefix string
	model     string
	client    *http.Client
}

func NewOpenAIProvider(apiKey string) Provider {
	return &openAICompatible{
		name:      "openai",
		baseURL:   "https://api.openai.com/v1",
		apiKey:    apiKey,
		keyPrefix: "sk-",
		model:     "gpt-3.5-turbo",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func NewTogetherProvider(apiKey string) Provider {
	return &openAICompatible{
		name:      "together",
		baseURL:   "https://api.together.xyz/v1",
		apiKey:    apiKey,
		keyPrefix: "sk-",
		model:     "meta-llama/Llama-2-70b-chat-hf",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *openAICompatible) Name() string { return p.name }

func (p *openAICompatible) Configured() bool {
	return p.apiKey != "" && strings.HasPrefix(p.apiKey, p.keyPrefix)
}

func (p *openAICompatible) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	temperature := 0.7
	maxTokens := 500
	request := chatCompletionRequest{
		Model: p.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream:      false,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API error (status %d): %s", p.name, resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", p.name)
	}
	return response.Choices[0].Message.Content, nil
}

// anthropicProvider talks the Anthropic messages API, which carries the
// system prompt as a top-level field.
type anthropicProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAnthropicProvider(apiKey string) Provider {
	return &anthropicProvider{
		baseURL: "https://api.anthropic.com/v1",
		apiKey:  apiKey,
		model:   "claude-3-haiku-20240307",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *anthropicProvider) Name() string { return "anthropic" }

func (p *anthropicProvider) Configured() bool {
	return p.apiKey != "" && strings.HasPrefix(p.apiKey, "sk-ant-")
}

type anthropicRequest struct {
	Model       string                  `json:"model"`
	MaxTokens   int                     `json:"max_tokens"`
	Temperature float64                 `json:"temperature"`
	System      string                  `json:"system"`
	Messages    []chatCompletionMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (p *anthropicProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	request := anthropicRequest{
		Model:       p.model,
		MaxTokens:   500,
		Temperature: 0.7,
		System:      systemPrompt,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: userMessage},
		},
	}
	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	for _, block := range response.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic returned no text content")
}
