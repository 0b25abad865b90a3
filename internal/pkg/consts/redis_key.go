package consts

import "time"

const (
	// TokenBlacklistKey prefixes revoked JWT signatures (logout).
	TokenBlacklistKey = "auth:blacklist:"
	// EmailOtpKey prefixes email verification codes, keyed by email.
	EmailOtpKey = "auth:otp:verify:"
	// PasswordResetKey prefixes password reset codes, keyed by email.
	PasswordResetKey = "auth:otp:reset:"
	// BoostPlansKey caches the active boost plan list.
	BoostPlansKey = "boost:plans:active"
	// ChatConversationChannel prefixes pub/sub channels for conversation rooms.
	ChatConversationChannel = "chat:conv:"
	// ChatGroupChannel prefixes pub/sub channels for study group rooms.
	ChatGroupChannel = "chat:group:"
)

const (
	EmailOtpTTL      = 15 * time.Minute
	PasswordResetTTL = 15 * time.Minute
	BoostPlansTTL    = 10 * time.Minute
)
