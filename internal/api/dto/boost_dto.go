package dto

import "time"

type InitializeBoostDTO struct {
	ProductID uint64 `json:"productId" binding:"required"`
	PlanID    uint64 `json:"planId" binding:"required"`
}

type BoostInitResultDTO struct {
	PaymentLink string `json:"paymentLink"`
	Reference   string `json:"reference"`
}

type VerifyBoostDTO struct {
	TransactionID string `json:"transactionId" binding:"required"`
	TxRef         string `json:"txRef" binding:"required"`
}

type BoostVerifyResultDTO struct {
	Reference     string    `json:"reference"`
	PromotedUntil time.Time `json:"promotedUntil"`
}

type BoostPlanDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
}

type CreateBoostPlanDTO struct {
	Name         string  `json:"name" binding:"required" validate:"min=2,max=60"`
	Price        float64 `json:"price" binding:"required" validate:"gt=0"`
	DurationDays int     `json:"durationDays" binding:"required" validate:"gt=0"`
}

type TransactionDTO struct {
	ID        uint64    `json:"id"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	ProductID uint64    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
