package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

const maxOutboxAttempts = 5

type OutboxRepo interface {
	CreateEvent(ctx context.Context, event *model.OutboxEvent) error
	FetchPending(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkSent(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64, attempt int, reason string) error
}

type OutboxRepoImpl struct {
	db *gorm.DB
}

func NewOutboxRepo(db *gorm.DB) OutboxRepo {
	return &OutboxRepoImpl{db: db}
}

func (s *OutboxRepoImpl) CreateEvent(ctx context.Context, event *model.OutboxEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *OutboxRepoImpl) FetchPending(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	events := make([]*model.OutboxEvent, 0)
	err := s.db.WithContext(ctx).
		Where("status = ? AND attempts < ?", model.OutboxPending, maxOutboxAttempts).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *OutboxRepoImpl) MarkSent(ctx context.Context, id uint64) error {
	now := time.Now()
	return s.db.WithContext(ctx).
		Model(&model.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.OutboxSent,
			"processed_at": now,
		}).Error
}

// MarkFailed keeps the event pending until attempts exhaust, then parks it
// as failed.
func (s *OutboxRepoImpl) MarkFailed(ctx context.Context, id uint64, attempt int, reason string) error {
	if len(reason) > 500 {
		reason = reason[:500]
	}
	status := model.OutboxPending
	if attempt >= maxOutboxAttempts {
		status = model.OutboxFailed
	}
	return s.db.WithContext(ctx).
		Model(&model.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"attempts":   attempt,
			"last_error": reason,
		}).Error
}
