package model

import "time"

// Service is a skill-based listing (tutoring, repairs, design work).
type Service struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_service_user" json:"userId"`
	Title       string    `gorm:"type:varchar(150);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    *string   `gorm:"type:varchar(255)" json:"imageUrl"`
	IsActive    bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Service) TableName() string { return "services" }

// Request is a buyer-side want-ad with a budget.
type Request struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_request_user" json:"userId"`
	Title       string    `gorm:"type:varchar(150);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	IsActive    bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Request) TableName() string { return "requests" }
