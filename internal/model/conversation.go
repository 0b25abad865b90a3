package model

import "time"

// Conversation is the durable thread between a buyer and seller about one
// product. One row per (product, buyer, seller) triple, created lazily on the
// first message.
type Conversation struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID        uint64     `gorm:"not null;uniqueIndex:idx_conv_triple" json:"productId"`
	BuyerID          uint64     `gorm:"not null;uniqueIndex:idx_conv_triple;index" json:"buyerId"`
	SellerID         uint64     `gorm:"not null;uniqueIndex:idx_conv_triple;index" json:"sellerId"`
	LastMessage      *string    `gorm:"type:varchar(255)" json:"lastMessage"`
	BuyerLastReadAt  *time.Time `json:"buyerLastReadAt"`
	SellerLastReadAt *time.Time `json:"sellerLastReadAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"index" json:"updatedAt"`

	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
	Buyer   User    `gorm:"foreignKey:BuyerID;references:ID" json:"-"`
	Seller  User    `gorm:"foreignKey:SellerID;references:ID" json:"-"`
}

func (Conversation) TableName() string { return "conversations" }

// Message belongs to exactly one conversation and is immutable once created.
type Message struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint64    `gorm:"not null;index:idx_msg_conv" json:"conversationId"`
	SenderID       uint64    `gorm:"not null" json:"senderId"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`

	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
}

func (Message) TableName() string { return "messages" }
