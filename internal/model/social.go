package model

import "time"

type Follow struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"not null;uniqueIndex:idx_follower_following" json:"followerId"`
	FollowingID uint64    `gorm:"not null;uniqueIndex:idx_follower_following;index" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Follow) TableName() string { return "follows" }

type Review struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewerID uint64    `gorm:"not null" json:"reviewerId"`
	RevieweeID uint64    `gorm:"not null;index:idx_review_reviewee" json:"revieweeId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `gorm:"type:varchar(500)" json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`

	Reviewer User `gorm:"foreignKey:ReviewerID;references:ID" json:"-"`
}

func (Review) TableName() string { return "reviews" }

type SavedSearch struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_saved_search_user" json:"userId"`
	Query     string    `gorm:"type:varchar(150);not null" json:"query"`
	Category  *string   `gorm:"type:varchar(80)" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedSearch) TableName() string { return "saved_searches" }

const (
	ReportPending   = "PENDING"
	ReportResolved  = "RESOLVED"
	ReportDismissed = "DISMISSED"
)

type Report struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterID     uint64    `gorm:"not null" json:"reporterId"`
	ReportedUserID uint64    `gorm:"not null;index:idx_report_reported" json:"reportedUserId"`
	Reason         string    `gorm:"type:varchar(500);not null" json:"reason"`
	Status         string    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`

	Reporter     User `gorm:"foreignKey:ReporterID;references:ID" json:"-"`
	ReportedUser User `gorm:"foreignKey:ReportedUserID;references:ID" json:"-"`
}

func (Report) TableName() string { return "reports" }
