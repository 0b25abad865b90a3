package dto

import "time"

type CreateServiceDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=3,max=150"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" binding:"required" validate:"gt=0"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=255"`
}

type UpdateServiceDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=255"`
	IsActive    *bool    `json:"isActive"`
}

type ServiceDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`

	ProviderID    uint64  `json:"providerId"`
	ProviderName  string  `json:"providerName"`
	ProviderPhoto *string `json:"providerPhoto"`
}

type CreateRequestDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=3,max=150"`
	Description string  `json:"description" validate:"max=5000"`
	Budget      float64 `json:"budget" binding:"required" validate:"gt=0"`
}

type UpdateRequestDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Budget      *float64 `json:"budget" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"isActive"`
}

type RequestDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`

	RequesterID    uint64  `json:"requesterId"`
	RequesterName  string  `json:"requesterName"`
	RequesterPhoto *string `json:"requesterPhoto"`
}

type ListListingsDTO struct {
	PageDTO
	Search string `form:"search"`
	UserID uint64 `form:"userId"`
}
