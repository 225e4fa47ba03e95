// File path: internal/notify/webhook.go
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rfplab/rfpgen/internal/common"
)

const defaultSendTimeout = 5 * time.Second

// Notifier posts lead events to an outbound webhook. Delivery is
// best-effort: failures are logged and swallowed, and an unconfigured
// notifier is a no-op. Nothing in the conversation or document flow ever
// waits on it.
type Notifier struct {
	url    string
	client *http.Client
}

// New returns a Notifier for the given webhook URL. An empty URL yields a
// disabled notifier that is still safe to call.
func New(url string) *Notifier {
	return &Notifier{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: defaultSendTimeout},
	}
}

// Event is the webhook payload.
type Event struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// Send delivers the event in a detached goroutine and returns immediately.
func (n *Notifier) Send(event Event) {
	if !n.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultSendTimeout)
		defer cancel()
		if err := n.deliver(ctx, event); err != nil {
			common.Logger().Warn("notify: webhook delivery failed", "kind", event.Kind, "error", err)
		}
	}()
}

func (n *Notifier) deliver(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
