package dto

// PlatformStatsDTO is the admin dashboard summary.
type PlatformStatsDTO struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalProducts  int64 `json:"totalProducts"`
	PendingReports int64 `json:"pendingReports"`
}

type ListUsersDTO struct {
	PageDTO
	Search string `form:"search"`
}

type ListReportsDTO struct {
	PageDTO
	Status string `form:"status"`
}

type ResolveReportDTO struct {
	Status string `json:"status" binding:"required" validate:"oneof=RESOLVED DISMISSED"`
}

type UpdateBoostPlanDTO struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=60"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	DurationDays *int     `json:"durationDays" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"isActive"`
}

type BroadcastDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=2,max=100"`
	Message string `json:"message" binding:"required" validate:"min=2,max=500"`
}
