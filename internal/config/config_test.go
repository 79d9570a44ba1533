package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"Provider", cfg.Provider, ""},
		{"Brand", cfg.Brand, "MiMarca"},
		{"Temperature", cfg.Temperature, 0.4},
		{"LLMTimeout", cfg.LLMTimeout, 30 * time.Second},
		{"OpenAIModel", cfg.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", cfg.GeminiModel, "gemini-2.0-flash"},
		{"SendTimeout", cfg.SendTimeout, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save and restore env
	originalPort := os.Getenv("PORT")
	originalBrand := os.Getenv("BRAND")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("BRAND", originalBrand)
	}()

	os.Setenv("PORT", "9090")
	os.Setenv("BRAND", "Acme")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Brand != "Acme" {
		t.Errorf("expected brand 'Acme', got %s", cfg.Brand)
	}
}

func TestLoadNormalizesProvider(t *testing.T) {
	originalProvider := os.Getenv("PROVIDER")
	defer func() {
		os.Setenv("PROVIDER", originalProvider)
	}()

	os.Setenv("PROVIDER", "  OpenAI ")

	cfg := Load()

	if cfg.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", cfg.Provider)
	}
}
