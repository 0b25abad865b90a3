package dto

import "time"

type StartConversationDTO struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Text      string `json:"text" binding:"required" validate:"min=1,max=2000"`
}

type SendMessageDTO struct {
	Text string `json:"text" binding:"required" validate:"min=1,max=2000"`
}

type MessageDTO struct {
	ID             uint64    `json:"id"`
	ConversationID uint64    `json:"conversationId"`
	SenderID       uint64    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationDTO struct {
	ID           uint64     `json:"id"`
	ProductID    uint64     `json:"productId"`
	ProductTitle string     `json:"productTitle"`
	ProductImage *string    `json:"productImage"`
	BuyerID      uint64     `json:"buyerId"`
	SellerID     uint64     `json:"sellerId"`
	PartnerID    uint64     `json:"partnerId"`
	PartnerName  string     `json:"partnerName"`
	PartnerPhoto *string    `json:"partnerPhoto"`
	LastMessage  *string    `json:"lastMessage"`
	Unread       bool       `json:"unread"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastReadAt   *time.Time `json:"lastReadAt"`
}

// UnreadCountsDTO feeds the app badge counters.
type UnreadCountsDTO struct {
	Notifications int64 `json:"notifications"`
	Messages      int64 `json:"messages"`
}

// ChatEventDTO is the payload relayed over the websocket.
type ChatEventDTO struct {
	Type           string    `json:"type"`
	ConversationID uint64    `json:"conversationId,omitempty"`
	GroupID        uint64    `json:"groupId,omitempty"`
	MessageID      uint64    `json:"messageId"`
	SenderID       uint64    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}
