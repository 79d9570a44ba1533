package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"whatsbot/internal/config"
)

func TestFromConfigOpenAI(t *testing.T) {
	cfg := config.Config{
		Provider:  "openai",
		OpenAIKey: "sk-test",
	}

	client, err := FromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oai, ok := client.(*OpenAIClient)
	if !ok {
		t.Fatalf("expected *OpenAIClient, got %T", client)
	}
	if oai.Model() != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", oai.Model())
	}
}

func TestFromConfigOpenAIModelOverride(t *testing.T) {
	cfg := config.Config{
		Provider:    "openai",
		OpenAIKey:   "sk-test",
		OpenAIModel: "gpt-4o",
	}

	client, err := FromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.(*OpenAIClient).Model(); got != "gpt-4o" {
		t.Errorf("expected model override gpt-4o, got %s", got)
	}
}

func TestFromConfigGemini(t *testing.T) {
	cfg := config.Config{
		Provider:  "gemini",
		GoogleKey: "test-key",
	}

	client, err := FromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gem, ok := client.(*GeminiClient)
	if !ok {
		t.Fatalf("expected *GeminiClient, got %T", client)
	}
	if gem.Model() != "gemini-2.0-flash" {
		t.Errorf("expected default model gemini-2.0-flash, got %s", gem.Model())
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantMsg string
	}{
		{
			name:    "unknown provider",
			cfg:     config.Config{Provider: "claude"},
			wantMsg: `invalid PROVIDER "claude"`,
		},
		{
			name:    "empty provider",
			cfg:     config.Config{},
			wantMsg: "valid options: openai, gemini",
		},
		{
			name:    "openai missing key",
			cfg:     config.Config{Provider: "openai"},
			wantMsg: "OPENAI_API_KEY",
		},
		{
			name:    "gemini missing key",
			cfg:     config.Config{Provider: "gemini"},
			wantMsg: "GOOGLE_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := FromConfig(context.Background(), tt.cfg)
			if client != nil {
				t.Error("expected nil client")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
