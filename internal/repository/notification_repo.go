package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type NotificationRepo interface {
	CreateNotification(ctx context.Context, notif *model.Notification) error
	GetNotificationById(ctx context.Context, id uint64) (*model.Notification, error)
	ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*model.Notification, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	DeleteNotification(ctx context.Context, id uint64) error
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{db: db}
}

func (s *NotificationRepoImpl) CreateNotification(ctx context.Context, notif *model.Notification) error {
	return s.db.WithContext(ctx).Create(notif).Error
}

func (s *NotificationRepoImpl) GetNotificationById(ctx context.Context, id uint64) (*model.Notification, error) {
	notif := &model.Notification{}
	result := s.db.WithContext(ctx).First(notif, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return notif, nil
}

func (s *NotificationRepoImpl) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	notifs := make([]*model.Notification, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifs).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}

func (s *NotificationRepoImpl) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (s *NotificationRepoImpl) MarkRead(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (s *NotificationRepoImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (s *NotificationRepoImpl) DeleteNotification(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Notification{}, id).Error
}
