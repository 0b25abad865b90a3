package dto

import "time"

type UserDTO struct {
	ID              uint64     `json:"id"`
	Email           string     `json:"email,omitempty"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	MatricNumber    *string    `json:"matricNumber,omitempty"`
	Level           *string    `json:"level,omitempty"`
	Department      *string    `json:"department,omitempty"`
	Bio             *string    `json:"bio"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl"`
	StoreName       *string    `json:"storeName"`
	StoreBannerURL  *string    `json:"storeBannerUrl"`
	SchoolID        *uint64    `json:"schoolId"`
	SchoolName      *string    `json:"schoolName,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	IsIDVerified    bool       `json:"isIdVerified"`
	IsAdmin         bool       `json:"isAdmin,omitempty"`
	IsActive        bool       `json:"isActive,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

type UpdateProfileDTO struct {
	FirstName      *string `json:"firstName" validate:"omitempty,max=60"`
	LastName       *string `json:"lastName" validate:"omitempty,max=60"`
	MatricNumber   *string `json:"matricNumber" validate:"omitempty,max=40"`
	Level          *string `json:"level" validate:"omitempty,max=20"`
	Department     *string `json:"department" validate:"omitempty,max=100"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	StoreName      *string `json:"storeName" validate:"omitempty,max=100"`
	StoreBannerURL *string `json:"storeBannerUrl" validate:"omitempty,max=255"`
	SchoolID       *uint64 `json:"schoolId"`
}

type PushTokenDTO struct {
	ExpoPushToken string `json:"expoPushToken" binding:"required"`
}

type IDVerificationDTO struct {
	IDCardURL string `json:"idCardUrl" binding:"required"`
}

// ProfileStatsDTO aggregates the public counters shown on a seller page.
type ProfileStatsDTO struct {
	Followers     int64   `json:"followers"`
	Following     int64   `json:"following"`
	Listings      int64   `json:"listings"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
	IsFollowing   bool    `json:"isFollowing"`
}

type SellerAnalyticsDTO struct {
	ActiveListings int64 `json:"activeListings"`
	TotalViews     int64 `json:"totalViews"`
	TotalBookmarks int64 `json:"totalBookmarks"`
	Followers      int64 `json:"followers"`
}
