package dto

type SchoolDTO struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	State   string  `json:"state"`
	City    string  `json:"city"`
	LogoURL *string `json:"logoUrl"`
}

type ListSchoolsDTO struct {
	Search string `form:"search"`
	State  string `form:"state"`
	Type   string `form:"type"`
}

type CreateSchoolDTO struct {
	Name  string `json:"name" binding:"required" validate:"min=3,max=150"`
	Type  string `json:"type" validate:"omitempty,max=40"`
	State string `json:"state" validate:"omitempty,max=60"`
	City  string `json:"city" validate:"omitempty,max=60"`
}
