// Package notify delivers human-facing notifications about fulfillment
// events to an external webhook. Delivery is best effort; the caller
// decides what to do with a failed push.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/ports"
)

// defaultTimeout bounds a single webhook push.
const defaultTimeout = 5 * time.Second

// webhookPayload is the JSON body posted to the webhook endpoint.
type webhookPayload struct {
	Event      string `json:"event"`
	Phone      string `json:"phone"`
	Message    string `json:"message,omitempty"`
	TaskID     string `json:"taskId,omitempty"`
	CourierID  string `json:"courierId,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// WebhookNotificationSink posts event notifications to a configured URL.
type WebhookNotificationSink struct {
	url    string
	client *http.Client
}

// NewWebhookNotificationSink creates a sink posting to the given URL.
func NewWebhookNotificationSink(url string) *WebhookNotificationSink {
	return &WebhookNotificationSink{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Notify posts the event as JSON. Non-2xx responses count as failures.
func (s *WebhookNotificationSink) Notify(ctx context.Context, event ports.AuditEvent) error {
	payload := webhookPayload{
		Event:      event.Name,
		Phone:      event.Phone,
		Message:    event.Detail,
		Amount:     event.Amount,
		OccurredAt: event.OccurredAt.Format(time.RFC3339),
	}
	if event.TaskID != nil {
		payload.TaskID = event.TaskID.String()
	}
	if event.CourierID != nil {
		payload.CourierID = event.CourierID.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
