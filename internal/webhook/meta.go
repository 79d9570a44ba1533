package webhook

import (
	"encoding/json"
	"net/http"

	"whatsbot/internal/app"
	"whatsbot/internal/httputil"
)

// --- WhatsApp Cloud API webhook payload types ---

type metaPayload struct {
	Object string      `json:"object"`
	Entry  []metaEntry `json:"entry"`
}

type metaEntry struct {
	ID      string       `json:"id"`
	Changes []metaChange `json:"changes"`
}

type metaChange struct {
	Value metaValue `json:"value"`
	Field string    `json:"field"`
}

type metaValue struct {
	MessagingProduct string        `json:"messaging_product"`
	Messages         []metaMessage `json:"messages"`
}

type metaMessage struct {
	From string    `json:"from"`
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Text *metaText `json:"text,omitempty"`
}

type metaText struct {
	Body string `json:"body"`
}

// firstMessage walks entry[0].changes[0].value.messages[0]. Any structural
// absence along the way means "no message", never an error.
func firstMessage(p metaPayload) (metaMessage, bool) {
	if len(p.Entry) == 0 {
		return metaMessage{}, false
	}
	if len(p.Entry[0].Changes) == 0 {
		return metaMessage{}, false
	}
	msgs := p.Entry[0].Changes[0].Value.Messages
	if len(msgs) == 0 {
		return metaMessage{}, false
	}
	return msgs[0], true
}

// MetaVerifyHandler answers the Cloud API subscription handshake. The
// challenge is echoed only on an exact verify-token match; an unset
// configured token rejects everything.
func MetaVerifyHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mode := q.Get("hub.mode")
		token := q.Get("hub.verify_token")
		challenge := q.Get("hub.challenge")

		verifyToken := deps.Config.WhatsAppVerifyToken
		if mode == "subscribe" && token != "" && verifyToken != "" && token == verifyToken {
			deps.Log.Info("whatsapp webhook verified")
			httputil.WriteText(w, http.StatusOK, challenge)
			return
		}

		deps.Log.Warn("whatsapp webhook verification failed", "mode", mode)
		httputil.WriteText(w, http.StatusForbidden, "Forbidden")
	}
}

// MetaMessageHandler processes incoming messages and relays the generated
// reply back through the Cloud API send endpoint.
//
// Malformed or message-less deliveries are acknowledged with an empty 200:
// the platform cannot act on an error response, and retries would only
// replay the same payload.
func MetaMessageHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload metaPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			deps.Log.Warn("whatsapp payload not decodable; ignoring", "err", err)
			w.WriteHeader(http.StatusOK)
			return
		}

		msg, ok := firstMessage(payload)
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}

		text := ""
		if msg.Text != nil {
			text = msg.Text.Body
		}

		answer, err := deps.Replier.Generate(r.Context(), text, deps.Config.Brand)
		if err != nil {
			httputil.Fail(deps.Log, w, "reply generation failed", err, http.StatusBadGateway)
			return
		}

		cfg := deps.Config
		if cfg.WhatsAppToken == "" || cfg.WhatsAppPhoneNumberID == "" {
			deps.Log.Info("send credentials missing; reply not delivered", "to", msg.From)
			httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "acknowledged_without_send"})
			return
		}

		// Fire and forget: the platform expects no outcome from this webhook,
		// so a failed send is logged and otherwise swallowed.
		if err := deps.Sender.SendText(r.Context(), msg.From, answer); err != nil {
			deps.Log.Error("whatsapp send failed", "err", err, "to", msg.From)
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "sent"})
	}
}
