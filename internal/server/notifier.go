package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// WebhookNotifier implements service.Notifier by POSTing outbound messages
// to the channel collaborator's send endpoint. Used for shopkeeper alerts;
// customer replies travel back in the webhook response instead.
type WebhookNotifier struct {
	client *http.Client
	logger *slog.Logger
	url    string
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type outboundMessage struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

// Notify implements service.Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, recipientID, text string) error {
	payload, err := json.Marshal(outboundMessage{RecipientID: recipientID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint returned %s", resp.Status)
	}
	return nil
}

// LogNotifier implements service.Notifier by logging the notification. Used
// when no outbound endpoint is configured so alerts still land somewhere
// visible.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements service.Notifier.
func (n *LogNotifier) Notify(_ context.Context, recipientID, text string) error {
	n.logger.Info("notification", "recipient", recipientID, "text", text)
	return nil
}
