package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type ChatService interface {
	StartConversation(ctx context.Context, userID uint64, startDTO *dto.StartConversationDTO) (*dto.ConversationDTO, error)
	ListConversations(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error)
	ListMessages(ctx context.Context, userID, conversationID uint64, page *dto.PageDTO) ([]*dto.MessageDTO, error)
	SendMessage(ctx context.Context, userID, conversationID uint64, text string) (*dto.MessageDTO, error)
	MarkRead(ctx context.Context, userID, conversationID uint64) error
}

type ChatServiceImpl struct {
	conversationRepo repository.ConversationRepo
	productRepo      repository.ProductRepo
	userRepo         repository.UserRepo
	notificationSvc  NotificationService
}

func NewChatService(
	conversationRepo repository.ConversationRepo,
	productRepo repository.ProductRepo,
	userRepo repository.UserRepo,
	notificationSvc NotificationService,
) ChatService {
	return &ChatServiceImpl{
		conversationRepo: conversationRepo,
		productRepo:      productRepo,
		userRepo:         userRepo,
		notificationSvc:  notificationSvc,
	}
}

func (s *ChatServiceImpl) StartConversation(ctx context.Context, userID uint64, startDTO *dto.StartConversationDTO) (*dto.ConversationDTO, error) {
	product, err := s.productRepo.GetProductById(ctx, startDTO.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	if product.UserID == userID {
		return nil, ErrSelfConversation
	}

	conv, err := s.conversationRepo.GetByTriple(ctx, product.ID, userID, product.UserID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv = &model.Conversation{
			ProductID: product.ID,
			BuyerID:   userID,
			SellerID:  product.UserID,
		}
		if err = s.conversationRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
	}

	if _, err = s.deliver(ctx, conv, userID, startDTO.Text); err != nil {
		return nil, err
	}

	full, err := s.conversationRepo.GetConversationById(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	return s.toConversationDTO(ctx, full, userID)
}

func (s *ChatServiceImpl) ListConversations(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error) {
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

	result := make([]*dto.ConversationDTO, 0, len(convs))
	for _, conv := range convs {
		convDTO := buildConversationDTO(conv, userID)
		convDTO.Unread = conversationUnread(conv, latest[conv.ID], userID)
		result = append(result, convDTO)
	}
	return result, nil
}

func (s *ChatServiceImpl) ListMessages(ctx context.Context, userID, conversationID uint64, page *dto.PageDTO) ([]*dto.MessageDTO, error) {
	conv, err := s.requireParticipant(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := s.conversationRepo.ListMessages(ctx, conv.ID, page.Offset(), page.PageSize())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MessageDTO, 0, len(messages))
	for _, msg := range messages {
		result = append(result, toMessageDTO(msg))
	}
	return result, nil
}

func (s *ChatServiceImpl) SendMessage(ctx context.Context, userID, conversationID uint64, text string) (*dto.MessageDTO, error) {
	conv, err := s.requireParticipant(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, conv, userID, text)
}

func (s *ChatServiceImpl) MarkRead(ctx context.Context, userID, conversationID uint64) error {
	conv, err := s.requireParticipant(ctx, userID, conversationID)
	if err != nil {
		return err
	}
	return s.conversationRepo.MarkRead(ctx, conv.ID, conv.BuyerID == userID, time.Now())
}

// deliver persists the message, relays it to connected sockets, and queues a
// notification for the other participant.
func (s *ChatServiceImpl) deliver(ctx context.Context, conv *model.Conversation, senderID uint64, text string) (*dto.MessageDTO, error) {
	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	if err := s.conversationRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetUserById(ctx, senderID)
	if err != nil {
		return nil, err
	}
	senderName := ""
	if sender != nil {
		senderName = displayName(sender)
	}

	event := &dto.ChatEventDTO{
		Type:           "message",
		ConversationID: conv.ID,
		MessageID:      msg.ID,
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
		CreatedAt:      msg.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		channel := consts.ChatConversationChannel + strconv.FormatUint(conv.ID, 10)
		if err = redis.Publish(ctx, channel, payload); err != nil {
			log.ErrorContext(ctx, "publish chat event", "conversation_id", conv.ID, "err", err)
		}
	}

	recipient := conv.SellerID
	if senderID == conv.SellerID {
		recipient = conv.BuyerID
	}
	preview := util.TruncateRunes(text, 120)
	s.notificationSvc.Notify(ctx, recipient, "MESSAGE", senderName, preview, map[string]string{
		"conversationId": strconv.FormatUint(conv.ID, 10),
	})

	msgDTO := toMessageDTO(msg)
	msgDTO.SenderName = senderName
	return msgDTO, nil
}

func (s *ChatServiceImpl) requireParticipant(ctx context.Context, userID, conversationID uint64) (*model.Conversation, error) {
	conv, err := s.conversationRepo.GetConversationById(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrAccessDenied
	}
	if conv.BuyerID != userID && conv.SellerID != userID {
		return nil, ErrAccessDenied
	}
	return conv, nil
}

func (s *ChatServiceImpl) toConversationDTO(ctx context.Context, conv *model.Conversation, userID uint64) (*dto.ConversationDTO, error) {
	latest, err := s.conversationRepo.LatestMessages(ctx, []uint64{conv.ID})
	if err != nil {
		return nil, err
	}
	convDTO := buildConversationDTO(conv, userID)
	convDTO.Unread = conversationUnread(conv, latest[conv.ID], userID)
	return convDTO, nil
}

func buildConversationDTO(conv *model.Conversation, userID uint64) *dto.ConversationDTO {
	partner := &conv.Seller
	partnerID := conv.SellerID
	lastReadAt := conv.BuyerLastReadAt
	if userID == conv.SellerID {
		partner = &conv.Buyer
		partnerID = conv.BuyerID
		lastReadAt = conv.SellerLastReadAt
	}

	return &dto.ConversationDTO{
		ID:           conv.ID,
		ProductID:    conv.ProductID,
		ProductTitle: conv.Product.Title,
		ProductImage: conv.Product.ImageURL,
		BuyerID:      conv.BuyerID,
		SellerID:     conv.SellerID,
		PartnerID:    partnerID,
		PartnerName:  displayName(partner),
		PartnerPhoto: partner.ProfilePhotoURL,
		LastMessage:  conv.LastMessage,
		UpdatedAt:    conv.UpdatedAt,
		LastReadAt:   lastReadAt,
	}
}

func toMessageDTO(msg *model.Message) *dto.MessageDTO {
	msgDTO := &dto.MessageDTO{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Text:           msg.Text,
		CreatedAt:      msg.CreatedAt,
	}
	if msg.Sender.ID != 0 {
		msgDTO.SenderName = displayName(&msg.Sender)
	}
	return msgDTO
}
