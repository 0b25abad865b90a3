package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
)

type ConversationRepo interface {
	GetConversationById(ctx context.Context, id uint64) (*model.Conversation, error)
	GetByTriple(ctx context.Context, productID, buyerID, sellerID uint64) (*model.Conversation, error)
	CreateConversation(ctx context.Context, conv *model.Conversation) error
	ListByUser(ctx context.Context, userID uint64) ([]*model.Conversation, error)
	CreateMessage(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context, conversationID uint64, offset, limit int) ([]*model.Message, error)
	LatestMessages(ctx context.Context, conversationIDs []uint64) (map[uint64]*model.Message, error)
	MarkRead(ctx context.Context, conversationID uint64, asBuyer bool, at time.Time) error
}

type ConversationRepoImpl struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &ConversationRepoImpl{db: db}
}

func (s *ConversationRepoImpl) GetConversationById(ctx context.Context, id uint64) (*model.Conversation, error) {
	conv := &model.Conversation{}
	result := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		First(conv, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conv, nil
}

func (s *ConversationRepoImpl) GetByTriple(ctx context.Context, productID, buyerID, sellerID uint64) (*model.Conversation, error) {
	conv := &model.Conversation{}
	result := s.db.WithContext(ctx).
		Where("product_id = ? AND buyer_id = ? AND seller_id = ?", productID, buyerID, sellerID).
		First(conv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conv, nil
}

func (s *ConversationRepoImpl) CreateConversation(ctx context.Context, conv *model.Conversation) error {
	return s.db.WithContext(ctx).Create(conv).Error
}

func (s *ConversationRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Conversation, error) {
	convs := make([]*model.Conversation, 0)
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// CreateMessage inserts the message and refreshes the conversation preview
// in one transaction.
func (s *ConversationRepoImpl) CreateMessage(ctx context.Context, msg *model.Message) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		preview := util.TruncateRunes(msg.Text, 255)
		return tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Updates(map[string]interface{}{
				"last_message": preview,
				"updated_at":   msg.CreatedAt,
			}).Error
	})
}

func (s *ConversationRepoImpl) ListMessages(ctx context.Context, conversationID uint64, offset, limit int) ([]*model.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	messages := make([]*model.Message, 0)
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *ConversationRepoImpl) LatestMessages(ctx context.Context, conversationIDs []uint64) (map[uint64]*model.Message, error) {
	latest := make(map[uint64]*model.Message)
	if len(conversationIDs) == 0 {
		return latest, nil
	}

	messages := make([]*model.Message, 0)
	err := s.db.WithContext(ctx).
		Where("id IN (?)",
			s.db.Model(&model.Message{}).
				Select("MAX(id)").
				Where("conversation_id IN ?", conversationIDs).
				Group("conversation_id")).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for _, msg := range messages {
		latest[msg.ConversationID] = msg
	}
	return latest, nil
}

func (s *ConversationRepoImpl) MarkRead(ctx context.Context, conversationID uint64, asBuyer bool, at time.Time) error {
	column := "seller_last_read_at"
	if asBuyer {
		column = "buyer_last_read_at"
	}
	return s.db.WithContext(ctx).
		Model(&model.Conversation{}).
		Where("id = ?", conversationID).
		UpdateColumn(column, at).Error
}
