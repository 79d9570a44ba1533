package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// LLM provider
	Provider    string        `env:"PROVIDER"` // "openai" or "gemini"
	Brand       string        `env:"BRAND" envDefault:"MiMarca"`
	Temperature float64       `env:"TEMPERATURE" envDefault:"0.4" validate:"gte=0,lte=2"`
	LLMTimeout  time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	OpenAIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GoogleKey   string        `env:"GOOGLE_API_KEY"`
	GeminiModel string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// WhatsApp Cloud API
	WhatsAppVerifyToken   string        `env:"WHATSAPP_VERIFY_TOKEN"`
	WhatsAppToken         string        `env:"WHATSAPP_TOKEN"`
	WhatsAppPhoneNumberID string        `env:"WHATSAPP_PHONE_NUMBER_ID"`
	SendTimeout           time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`
}

var validate = validator.New()

// Load reads configuration from environment variables with defaults.
// Bad values are logged, never fatal: the process has to stay alive even
// with broken configuration so the liveness endpoints keep working.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := validate.Struct(&cfg); err != nil {
		slog.Warn("config validation failed", "err", err)
	}
	return cfg
}
