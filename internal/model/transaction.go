package model

import "time"

const (
	TransactionPending    = "pending"
	TransactionSuccessful = "successful"

	TransactionTypeBoost = "boost"
)

// Transaction records a payment attempt. The reference is globally unique and
// is the sole idempotency guard against double-crediting a boost.
type Transaction struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"type:varchar(120);uniqueIndex:idx_tx_reference;not null" json:"reference"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	UserID    uint64    `gorm:"not null;index:idx_tx_user" json:"userId"`
	ProductID uint64    `gorm:"not null;index:idx_tx_product" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Transaction) TableName() string { return "transactions" }

// BoostPlan is a promotion tier: price and promotion window in days.
type BoostPlan struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(60);not null" json:"name"`
	Price        float64   `gorm:"not null" json:"price"`
	DurationDays int       `gorm:"not null" json:"durationDays"`
	IsActive     bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (BoostPlan) TableName() string { return "boost_plans" }
