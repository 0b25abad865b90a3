package mailer

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joeljosepholawale/campustng/internal/api/config"
)

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type sendPayload struct {
	Sender      sendParty   `json:"sender"`
	To          []sendParty `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type sendParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// BrevoMailer implements Mailer against the Brevo transactional API.
type BrevoMailer struct {
	client      *resty.Client
	fromName    string
	fromAddress string
}

func NewBrevoMailer() *BrevoMailer {
	cfg := config.Cfg.Email
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(15*time.Second).
		SetHeader("api-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &BrevoMailer{
		client:      client,
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
	}
}

func (m *BrevoMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := sendPayload{
		Sender:      sendParty{Name: m.fromName, Email: m.fromAddress},
		To:          []sendParty{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/smtp/email")
	if err != nil {
		return fmt.Errorf("email send request: %w", err)
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "email send failed", "status", resp.StatusCode(), "body", resp.String())
		return fmt.Errorf("email send failed: status %d", resp.StatusCode())
	}
	return nil
}
