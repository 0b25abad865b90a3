package model

import "time"

type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(80);uniqueIndex:idx_category_name;not null" json:"name"`
	Description *string   `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Category) TableName() string { return "categories" }
