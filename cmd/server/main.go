package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"whatsbot/internal/app"
	"whatsbot/internal/httputil"
	"whatsbot/internal/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := app.Build(ctx)
	r := httputil.NewRouter(deps.Log)

	r.Get("/", rootHandler(deps))
	r.Get("/ping", pingHandler())
	r.Post("/webhook/twilio", webhook.TwilioHandler(deps))
	r.Get("/webhook/meta", webhook.MetaVerifyHandler(deps))
	r.Post("/webhook/meta", webhook.MetaMessageHandler(deps))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr, "provider", deps.Config.Provider, "llm_ready", deps.Replier.Ready())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Shut down cleanly on signal or server failure.
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
	}
}

func rootHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"provider": deps.Config.Provider,
			"brand":    deps.Config.Brand,
		})
	}
}

func pingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteText(w, http.StatusOK, "pong")
	}
}
