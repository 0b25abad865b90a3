package service

import (
	"context"
	log "log/slog"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

// enqueueEmail records an email side effect for the outbox dispatcher.
// Delivery failures never surface to the caller.
func enqueueEmail(ctx context.Context, repo repository.OutboxRepo, to, subject, html string) {
	payload, err := json.Marshal(&model.EmailPayload{
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.ErrorContext(ctx, "marshal email payload", "err", err)
		return
	}

	event := &model.OutboxEvent{
		Kind:    model.OutboxKindEmail,
		Payload: string(payload),
		Status:  model.OutboxPending,
	}
	if err = repo.CreateEvent(ctx, event); err != nil {
		log.ErrorContext(ctx, "enqueue email event", "err", err)
	}
}

// enqueuePush records a push side effect for the outbox dispatcher.
func enqueuePush(ctx context.Context, repo repository.OutboxRepo, token, title, body string, data map[string]string) {
	payload, err := json.Marshal(&model.PushPayload{
		Token: token,
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		log.ErrorContext(ctx, "marshal push payload", "err", err)
		return
	}

	event := &model.OutboxEvent{
		Kind:    model.OutboxKindPush,
		Payload: string(payload),
		Status:  model.OutboxPending,
	}
	if err = repo.CreateEvent(ctx, event); err != nil {
		log.ErrorContext(ctx, "enqueue push event", "err", err)
	}
}
