package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the authenticated identity inside the token.
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

const RoleAdmin = "ADMIN"
