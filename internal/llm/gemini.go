package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API via the official Google GenAI SDK.
type GeminiClient struct {
	model       string
	temperature float64
	timeout     time.Duration
	client      *genai.Client
}

// GeminiOptions configures a GeminiClient.
type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

const defaultGeminiModel = "gemini-2.0-flash"

// NewGeminiClient builds a client against the Gemini API backend.
func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{
		model:       model,
		temperature: opts.Temperature,
		timeout:     timeout,
		client:      cli,
	}, nil
}

// Model reports the model the client is bound to.
func (c *GeminiClient) Model() string { return c.model }

func (c *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.Models.GenerateContent(reqCtx, c.model, genai.Text(user), &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(c.temperature)),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: no candidates returned")
	}
	return text, nil
}
