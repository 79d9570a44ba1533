package llm

import (
	"context"
	"errors"
	"fmt"

	"whatsbot/internal/config"
)

// Client is a minimal completion interface to allow pluggable providers.
// Implementations are safe for concurrent use after construction.
type Client interface {
	// Complete sends a system instruction and a user message and returns the
	// model's text reply unmodified.
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrConfig marks provider-selection and credential errors. Wrapped errors
// carry the detail; callers match with errors.Is.
var ErrConfig = errors.New("llm config error")

// FromConfig builds the completion client selected by cfg.Provider.
// Construction captures the credential and model but performs no network I/O.
func FromConfig(ctx context.Context, cfg config.Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is required when PROVIDER=openai", ErrConfig)
		}
		return NewOpenAIClient(OpenAIOptions{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.Temperature,
			Timeout:     cfg.LLMTimeout,
		})
	case "gemini":
		if cfg.GoogleKey == "" {
			return nil, fmt.Errorf("%w: GOOGLE_API_KEY is required when PROVIDER=gemini", ErrConfig)
		}
		return NewGeminiClient(ctx, GeminiOptions{
			APIKey:      cfg.GoogleKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.Temperature,
			Timeout:     cfg.LLMTimeout,
		})
	default:
		return nil, fmt.Errorf("%w: invalid PROVIDER %q (valid options: openai, gemini)", ErrConfig, cfg.Provider)
	}
}
