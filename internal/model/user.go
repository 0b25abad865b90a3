package model

import (
	"time"
)

type User struct {
	ID              uint64  `gorm:"primaryKey"`
	Email           string  `gorm:"type:varchar(120);uniqueIndex:idx_email;not null"`
	HashedPassword  string  `gorm:"type:varchar(255);not null" json:"-"`
	FirstName       *string `gorm:"type:varchar(60)"`
	LastName        *string `gorm:"type:varchar(60)"`
	MatricNumber    *string `gorm:"type:varchar(40)"`
	Level           *string `gorm:"type:varchar(20)"`
	Department      *string `gorm:"type:varchar(100)"`
	Bio             *string `gorm:"type:varchar(500)"`
	ProfilePhotoURL *string `gorm:"type:varchar(255)"`
	StoreName       *string `gorm:"type:varchar(100)"`
	StoreBannerURL  *string `gorm:"type:varchar(255)"`
	SchoolID        *uint64 `gorm:"index"`
	ExpoPushToken   *string `gorm:"type:varchar(255)"`
	IDCardURL       *string `gorm:"type:varchar(255)"`
	IsVerified      bool    `gorm:"type:tinyint(1);default:0"`
	IsIDVerified    bool    `gorm:"type:tinyint(1);default:0"`
	IsAdmin         bool    `gorm:"type:tinyint(1);default:0"`
	IsActive        bool    `gorm:"type:tinyint(1);default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	School *School `gorm:"foreignKey:SchoolID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
