package dto

type RegisterDTO struct {
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	FirstName *string `json:"firstName" validate:"omitempty,max=60"`
	LastName  *string `json:"lastName" validate:"omitempty,max=60"`
	SchoolID  *uint64 `json:"schoolId"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailDTO struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required" validate:"len=4"`
}

type EmailDTO struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordDTO struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required" validate:"len=6"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type AuthResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
