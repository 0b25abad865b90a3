package model

import "time"

type Notification struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_notif_user" json:"userId"`
	Type      string    `gorm:"type:varchar(30);default:'SYSTEM'" json:"type"`
	Title     string    `gorm:"type:varchar(150)" json:"title"`
	Message   string    `gorm:"type:varchar(500)" json:"message"`
	Data      *string   `gorm:"type:varchar(1024)" json:"data"`
	IsRead    bool      `gorm:"type:tinyint(1);default:0;index:idx_notif_read" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }
