package model

import (
	"time"
)

type Product struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	UserID        uint64     `gorm:"not null;index:idx_product_user" json:"userId"`
	CategoryID    uint64     `gorm:"not null;index:idx_product_category" json:"categoryId"`
	Title         string     `gorm:"type:varchar(150);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Price         float64    `gorm:"not null" json:"price"`
	Condition     string     `gorm:"type:varchar(30)" json:"condition"`
	ListingType   string     `gorm:"type:varchar(30);default:'Sale'" json:"listingType"`
	ImageURL      *string    `gorm:"type:varchar(255)" json:"imageUrl"`
	ImageURL2     *string    `gorm:"type:varchar(255)" json:"imageUrl2"`
	Views         int64      `gorm:"not null;default:0" json:"views"`
	Bookmarks     int64      `gorm:"not null;default:0" json:"bookmarks"`
	IsActive      bool       `gorm:"type:tinyint(1);default:1" json:"isActive"`
	IsSold        bool       `gorm:"type:tinyint(1);default:0" json:"isSold"`
	IsPromoted    bool       `gorm:"type:tinyint(1);default:0;index:idx_product_promoted" json:"isPromoted"`
	PromotedUntil *time.Time `json:"promotedUntil"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	User     User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID" json:"category"`
}

func (Product) TableName() string {
	return "products"
}
