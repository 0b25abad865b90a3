package push

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joeljosepholawale/campustng/internal/api/config"
)

// Sender delivers push notifications to device tokens.
type Sender interface {
	Send(ctx context.Context, messages []Message) error
}

// Message is a single push to one device.
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

// Expo delivers at most this many messages per request.
const maxBatchSize = 100

// ExpoSender implements Sender against the Expo push API.
type ExpoSender struct {
	client *resty.Client
}

func NewExpoSender() *ExpoSender {
	cfg := config.Cfg.Push
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ExpoSender{client: client}
}

func (s *ExpoSender) Send(ctx context.Context, messages []Message) error {
	for start := 0; start < len(messages); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(messages) {
			end = len(messages)
		}
		batch := messages[start:end]

		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(batch).
			Post("/push/send")
		if err != nil {
			return fmt.Errorf("push send request: %w", err)
		}
		if resp.IsError() {
			log.ErrorContext(ctx, "push send failed", "status", resp.StatusCode(), "body", resp.String())
			return fmt.Errorf("push send failed: status %d", resp.StatusCode())
		}
	}
	return nil
}
