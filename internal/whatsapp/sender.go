// Package whatsapp sends outbound text messages through the WhatsApp
// Business Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIBase = "https://graph.facebook.com/v20.0"

// Sender delivers a text message to a WhatsApp user.
type Sender interface {
	SendText(ctx context.Context, to, body string) error
}

// CloudAPI implements Sender against the Graph API messages endpoint.
type CloudAPI struct {
	apiBase       string
	token         string
	phoneNumberID string
	client        *http.Client
}

// CloudAPIOptions configures a CloudAPI sender. APIBase is overridable for
// tests; it defaults to the production Graph API host.
type CloudAPIOptions struct {
	Token         string
	PhoneNumberID string
	APIBase       string
	Timeout       time.Duration
}

// NewCloudAPI builds a sender. Credentials may be empty; callers are
// expected to check configuration before sending.
func NewCloudAPI(opts CloudAPIOptions) *CloudAPI {
	if opts.APIBase == "" {
		opts.APIBase = defaultAPIBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &CloudAPI{
		apiBase:       opts.APIBase,
		token:         opts.Token,
		phoneNumberID: opts.PhoneNumberID,
		client:        &http.Client{Timeout: opts.Timeout},
	}
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendText posts a text message to the Cloud API.
func (c *CloudAPI) SendText(ctx context.Context, to, body string) error {
	url := fmt.Sprintf("%s/%s/messages", c.apiBase, c.phoneNumberID)

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Text:             textBody{Body: body},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
