package app

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"

	"whatsbot/internal/config"
	"whatsbot/internal/llm"
	"whatsbot/internal/logger"
	"whatsbot/internal/reply"
	"whatsbot/internal/whatsapp"
)

// Deps bundles common runtime dependencies for request handlers.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Replier *reply.Generator
	Sender  whatsapp.Sender
}

// Build loads env, config, and shared components.
//
// A broken LLM configuration does not fail the build: the process comes up
// in degraded mode with liveness endpoints working and reply generation
// failing per request. Only request paths that need the model are affected.
func Build(ctx context.Context) Deps {
	// .env is a development convenience; absence is normal.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	client, err := llm.FromConfig(ctx, cfg)
	if err != nil {
		log.Error("llm not configured; starting degraded", "err", err)
		client = nil
	} else {
		log.Info("llm client ready", "provider", cfg.Provider)
	}

	sender := whatsapp.NewCloudAPI(whatsapp.CloudAPIOptions{
		Token:         cfg.WhatsAppToken,
		PhoneNumberID: cfg.WhatsAppPhoneNumberID,
		Timeout:       cfg.SendTimeout,
	})

	return Deps{
		Config:  cfg,
		Log:     log,
		Replier: reply.NewGenerator(client),
		Sender:  sender,
	}
}
