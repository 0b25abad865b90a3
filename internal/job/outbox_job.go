package job

import (
	"context"
	"fmt"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/logger"
	"github.com/joeljosepholawale/campustng/internal/pkg/mailer"
	"github.com/joeljosepholawale/campustng/internal/pkg/push"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

const outboxBatchSize = 50

// OutboxJob drains pending outbox events and dispatches them to the
// email and push providers. A failed delivery bumps the attempt counter
// and stays pending until the retry cap is reached.
type OutboxJob struct {
	outboxRepo repository.OutboxRepo
	mailer     mailer.Mailer
	pushSender push.Sender
}

func NewOutboxJob(outboxRepo repository.OutboxRepo, m mailer.Mailer, pushSender push.Sender) *OutboxJob {
	return &OutboxJob{
		outboxRepo: outboxRepo,
		mailer:     m,
		pushSender: pushSender,
	}
}

func (s *OutboxJob) Run() {
	traceID := "job-outbox-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	events, err := s.outboxRepo.FetchPending(ctx, outboxBatchSize)
	if err != nil {
		log.ErrorContext(ctx, "fetch pending outbox events failed", "err", err)
		return
	}
	if len(events) == 0 {
		return
	}

	sent := 0
	for _, event := range events {
		if err := s.dispatch(ctx, event); err != nil {
			log.WarnContext(ctx, "outbox dispatch failed", "id", event.ID, "kind", event.Kind, "err", err)
			if markErr := s.outboxRepo.MarkFailed(ctx, event.ID, event.Attempts+1, err.Error()); markErr != nil {
				log.ErrorContext(ctx, "mark outbox event failed error", "id", event.ID, "err", markErr)
			}
			continue
		}
		if err := s.outboxRepo.MarkSent(ctx, event.ID); err != nil {
			log.ErrorContext(ctx, "mark outbox event sent error", "id", event.ID, "err", err)
			continue
		}
		sent++
	}

	log.InfoContext(ctx, "outbox batch processed", "total", len(events), "sent", sent)
}

func (s *OutboxJob) dispatch(ctx context.Context, event *model.OutboxEvent) error {
	switch event.Kind {
	case model.OutboxKindEmail:
		var payload model.EmailPayload
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid email payload: %w", err)
		}
		return s.mailer.Send(ctx, payload.To, payload.Subject, payload.HTML)
	case model.OutboxKindPush:
		var payload model.PushPayload
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid push payload: %w", err)
		}
		return s.pushSender.Send(ctx, []push.Message{{
			To:    payload.Token,
			Title: payload.Title,
			Body:  payload.Body,
			Data:  payload.Data,
			Sound: "default",
		}})
	default:
		return fmt.Errorf("unknown outbox kind %q", event.Kind)
	}
}
