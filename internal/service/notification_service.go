package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type NotificationService interface {
	// Notify persists an in-app notification and queues a push for the
	// recipient's device. Failures are logged, never propagated.
	Notify(ctx context.Context, userID uint64, notifType, title, message string, data map[string]string)
	List(ctx context.Context, userID uint64, offset, limit int) ([]*dto.NotificationDTO, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	Delete(ctx context.Context, userID, notificationID uint64) error
	UnreadCounts(ctx context.Context, userID uint64) (*dto.UnreadCountsDTO, error)
}

type NotificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	conversationRepo repository.ConversationRepo
	userRepo         repository.UserRepo
	outboxRepo       repository.OutboxRepo
}

func NewNotificationService(
	notificationRepo repository.NotificationRepo,
	conversationRepo repository.ConversationRepo,
	userRepo repository.UserRepo,
	outboxRepo repository.OutboxRepo,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		outboxRepo:       outboxRepo,
	}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, userID uint64, notifType, title, message string, data map[string]string) {
	notif := &model.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			log.ErrorContext(ctx, "marshal notification data", "user_id", userID, "err", err)
		} else {
			encoded := string(raw)
			notif.Data = &encoded
		}
	}
	if err := s.notificationRepo.CreateNotification(ctx, notif); err != nil {
		log.ErrorContext(ctx, "create notification", "user_id", userID, "err", err)
		return
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "load push recipient", "user_id", userID, "err", err)
		return
	}
	if user == nil || user.ExpoPushToken == nil || *user.ExpoPushToken == "" {
		return
	}
	enqueuePush(ctx, s.outboxRepo, *user.ExpoPushToken, title, message, data)
}

func (s *NotificationServiceImpl) List(ctx context.Context, userID uint64, offset, limit int) ([]*dto.NotificationDTO, error) {
	notifs, err := s.notificationRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationDTO, 0, len(notifs))
	for _, notif := range notifs {
		result = append(result, &dto.NotificationDTO{
			ID:        notif.ID,
			Type:      notif.Type,
			Title:     notif.Title,
			Message:   notif.Message,
			Data:      notif.Data,
			IsRead:    notif.IsRead,
			CreatedAt: notif.CreatedAt,
		})
	}
	return result, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	notif, err := s.notificationRepo.GetNotificationById(ctx, notificationID)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotificationNotFound
	}
	if notif.UserID != userID {
		return ErrAccessDenied
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, userID, notificationID uint64) error {
	notif, err := s.notificationRepo.GetNotificationById(ctx, notificationID)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotificationNotFound
	}
	if notif.UserID != userID {
		return ErrAccessDenied
	}
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}

func (s *NotificationServiceImpl) UnreadCounts(ctx context.Context, userID uint64) (*dto.UnreadCountsDTO, error) {
	notifCount, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	convs, err := s.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	convIDs := make([]uint64, 0, len(convs))
	for _, conv := range convs {
		convIDs = append(convIDs, conv.ID)
	}
	latest, err := s.conversationRepo.LatestMessages(ctx, convIDs)
	if err != nil {
		return nil, err
	}

	var msgCount int64
	for _, conv := range convs {
		if conversationUnread(conv, latest[conv.ID], userID) {
			msgCount++
		}
	}

	return &dto.UnreadCountsDTO{
		Notifications: notifCount,
		Messages:      msgCount,
	}, nil
}

// conversationUnread reports whether the latest message in the conversation
// is unseen by the given participant. A conversation with no messages, or
// whose last message the participant sent themselves, is never unread.
func conversationUnread(conv *model.Conversation, latest *model.Message, userID uint64) bool {
	if latest == nil || latest.SenderID == userID {
		return false
	}

	var lastReadAt *time.Time
	if conv.BuyerID == userID {
		lastReadAt = conv.BuyerLastReadAt
	} else {
		lastReadAt = conv.SellerLastReadAt
	}

	if lastReadAt == nil {
		return true
	}
	return latest.CreatedAt.After(*lastReadAt)
}
