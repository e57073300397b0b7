package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const sentimentPrompt = `You are a sentiment classifier. Classify the user's text and answer with JSON only, no prose:
{"label": "POSITIVE" or "NEGATIVE", "score": confidence between 0.0 and 1.0}`

// OpenAIProvider implements Provider on the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI-backed classifier.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Classify labels the text via a chat completion constrained to a JSON
// label/score pair.
func (p *OpenAIProvider) Classify(ctx context.Context, text string) (Classification, error) {
	model := p.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   50,
		Temperature: 0.1,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Classification{}, fmt.Errorf("no response from OpenAI")
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

// parseClassification decodes the model's JSON answer, tolerating the
// code fences some models wrap around JSON.
func parseClassification(raw string) (Classification, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var c Classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Classification{}, fmt.Errorf("parse classifier response: %w", err)
	}

	c.Label = strings.ToUpper(strings.TrimSpace(c.Label))
	if c.Label != "POSITIVE" && c.Label != "NEGATIVE" {
		return Classification{}, fmt.Errorf("unexpected classifier label: %q", c.Label)
	}
	if c.Score < 0 || c.Score > 1 {
		return Classification{}, fmt.Errorf("classifier score out of range: %v", c.Score)
	}

	return c, nil
}

// NewProvider creates a classifier provider from configuration. An empty
// provider name disables classification entirely (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: openai)", config.Provider)
	}
}
