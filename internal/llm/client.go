package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/career-mentor/internal/types"
)

// ErrMissingAPIKey indicates that no API key is configured. Callers
// translate it into a user-visible warning instead of failing the
// session.
var ErrMissingAPIKey = errors.New("API key is required")

// Options control a single completion call.
type Options struct {
	Tier        ModelTier
	MaxTokens   int32
	Temperature float32
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete generates an assistant reply for the given conversation
	// turns, with the system persona applied.
	Complete(ctx context.Context, system string, turns []types.Message, opts Options) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends the conversation turns to Gemini and returns the reply
// text. The final turn must be the new user message; earlier turns are
// mapped onto chat history.
func (c *GeminiClient) Complete(ctx context.Context, system string, turns []types.Message, opts Options) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("no turns to complete")
	}

	tier := opts.Tier
	if tier == "" {
		tier = TierStandard
	}
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxTokens)
	}
	model.SetTemperature(opts.Temperature)

	chat := model.StartChat()
	chat.History = toHistory(turns[:len(turns)-1])

	resp, err := chat.SendMessage(ctx, genai.Text(turns[len(turns)-1].Content))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toHistory converts conversation messages into Gemini chat history.
// Gemini names the assistant role "model".
func toHistory(turns []types.Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == types.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return history
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// Unconfigured is a Client for sessions started without an API key.
// Every call reports the missing credential so the session can degrade
// to an inline warning instead of refusing to start.
type Unconfigured struct{}

// Complete always fails with ErrMissingAPIKey.
func (Unconfigured) Complete(context.Context, string, []types.Message, Options) (string, error) {
	return "", ErrMissingAPIKey
}

// Close is a no-op.
func (Unconfigured) Close() error { return nil }
