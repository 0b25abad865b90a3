package dto

import "time"

type CreateReviewDTO struct {
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

type ReviewDTO struct {
	ID            uint64    `json:"id"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment"`
	ReviewerID    uint64    `json:"reviewerId"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerPhoto *string   `json:"reviewerPhoto"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateSavedSearchDTO struct {
	Query    string  `json:"query" binding:"required" validate:"min=1,max=150"`
	Category *string `json:"category" validate:"omitempty,max=80"`
}

type SavedSearchDTO struct {
	ID        uint64    `json:"id"`
	Query     string    `json:"query"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReportDTO struct {
	ReportedUserID uint64 `json:"reportedUserId" binding:"required"`
	Reason         string `json:"reason" binding:"required" validate:"min=3,max=500"`
}

type ReportDTO struct {
	ID               uint64    `json:"id"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	ReporterID       uint64    `json:"reporterId"`
	ReporterName     string    `json:"reporterName"`
	ReportedUserID   uint64    `json:"reportedUserId"`
	ReportedUserName string    `json:"reportedUserName"`
	CreatedAt        time.Time `json:"createdAt"`
}
