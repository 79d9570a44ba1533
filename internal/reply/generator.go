// Package reply renders the assistant persona and produces replies through
// the configured completion client.
package reply

import (
	"context"
	"errors"
	"fmt"

	"whatsbot/internal/llm"
)

// ErrNotReady is returned when no completion client was installed at
// bootstrap (broken provider configuration).
var ErrNotReady = errors.New("llm not initialized")

const personaTemplate = "Eres un asistente de WhatsApp para %s. Responde claro, breve y útil. Responde en el mismo idioma del usuario si es posible."

// Generator produces replies for inbound messages. The zero value is a
// degraded generator that fails every call with ErrNotReady.
type Generator struct {
	client llm.Client
}

// NewGenerator wraps a completion client. A nil client is allowed and yields
// a generator that reports ErrNotReady on use.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Ready reports whether a completion client is installed.
func (g *Generator) Ready() bool {
	return g != nil && g.client != nil
}

// Generate sends the user text with the brand persona and returns the model
// output unmodified. The client's failure is wrapped and propagated, never
// swallowed.
func (g *Generator) Generate(ctx context.Context, userText, brand string) (string, error) {
	if !g.Ready() {
		return "", ErrNotReady
	}
	system := fmt.Sprintf(personaTemplate, brand)
	out, err := g.client.Complete(ctx, system, userText)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	return out, nil
}
