package model

import "time"

const (
	OutboxKindPush  = "push"
	OutboxKindEmail = "email"

	OutboxPending = "pending"
	OutboxSent    = "sent"
	OutboxFailed  = "failed"
)

// OutboxEvent is a queued side effect (push or email) recorded in the same
// transaction as the primary write and dispatched asynchronously by a cron
// job. Failures are retried up to a cap and recorded instead of being lost.
type OutboxEvent struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind        string     `gorm:"type:varchar(20);not null" json:"kind"`
	Payload     string     `gorm:"type:text;not null" json:"payload"`
	Status      string     `gorm:"type:varchar(20);default:'pending';index:idx_outbox_status" json:"status"`
	Attempts    int        `gorm:"not null;default:0" json:"attempts"`
	LastError   *string    `gorm:"type:varchar(500)" json:"lastError"`
	ProcessedAt *time.Time `json:"processedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (OutboxEvent) TableName() string { return "outbox_events" }

// EmailPayload is the JSON body of an email outbox event.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// PushPayload is the JSON body of a push outbox event.
type PushPayload struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
