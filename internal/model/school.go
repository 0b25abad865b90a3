package model

import "time"

type School struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(150);uniqueIndex:idx_school_name;not null" json:"name"`
	Type       string    `gorm:"type:varchar(40)" json:"type"`
	State      string    `gorm:"type:varchar(60)" json:"state"`
	City       string    `gorm:"type:varchar(60)" json:"city"`
	LogoURL    *string   `gorm:"type:varchar(255)" json:"logoUrl"`
	IsApproved bool      `gorm:"type:tinyint(1);default:0" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (School) TableName() string { return "schools" }
