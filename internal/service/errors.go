package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	UpstreamError       = 502
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid parameters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrDisposableEmail    = errors.New("disposable email addresses are not allowed")
	ErrInvalidEmail       = errors.New("please provide a valid email address")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrCodeIncorrect      = errors.New("invalid or expired code")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrOldPasswordWrong   = errors.New("incorrect old password")
	ErrAccountDisabled    = errors.New("this account has been deactivated")
	ErrSelfFollow         = errors.New("you cannot follow yourself")
	ErrSelfReview         = errors.New("you cannot review yourself")
	ErrRatingInvalid      = errors.New("rating must be between 1 and 5")
	ErrSelfBan            = errors.New("cannot ban yourself")

	ErrProductNotFound      = errors.New("product not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("cannot delete category while products are using it")
	ErrSchoolNotFound       = errors.New("school not found")
	ErrNotOwner             = errors.New("you do not own this listing")
	ErrPlanNotFound         = errors.New("boost plan not found")
	ErrNotGroupMember       = errors.New("you must be a member of this group")
	ErrGroupNotFound        = errors.New("study group not found")
	ErrForumPostNotFound    = errors.New("forum post not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrSelfConversation     = errors.New("you cannot message yourself")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSavedSearchNotFound  = errors.New("saved search not found")
	ErrSavedSearchLimit     = errors.New("you have reached the maximum number of saved searches")
	ErrSavedSearchExists    = errors.New("you already have this exact search saved")
	ErrReportNotFound       = errors.New("report not found")
	ErrIDCardRequired       = errors.New("id card image url is required")

	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrAmountMismatch      = errors.New("invalid payment amount or currency")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")

	ErrFileNotSupported = errors.New("unsupported file type")
	ErrFileMissing      = errors.New("no image file provided")

	UnauthorizedError = errors.New("not authorized")
	UnExpectedError   = errors.New("something went wrong, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrUserExists:         BadRequest,
	ErrUserNotFound:       NotFound,
	ErrDisposableEmail:    BadRequest,
	ErrInvalidEmail:       BadRequest,
	ErrAlreadyVerified:    BadRequest,
	ErrCodeIncorrect:      BadRequest,
	ErrPasswordTooShort:   BadRequest,
	ErrOldPasswordWrong:   BadRequest,
	ErrAccountDisabled:    Forbidden,
	ErrSelfFollow:         BadRequest,
	ErrSelfReview:         BadRequest,
	ErrRatingInvalid:      BadRequest,
	ErrSelfBan:            BadRequest,

	ErrProductNotFound:      NotFound,
	ErrServiceNotFound:      NotFound,
	ErrRequestNotFound:      NotFound,
	ErrCategoryNotFound:     NotFound,
	ErrCategoryInUse:        BadRequest,
	ErrSchoolNotFound:       NotFound,
	ErrNotOwner:             Forbidden,
	ErrPlanNotFound:         NotFound,
	ErrNotGroupMember:       Forbidden,
	ErrGroupNotFound:        NotFound,
	ErrForumPostNotFound:    NotFound,
	ErrAccessDenied:         Forbidden,
	ErrSelfConversation:     BadRequest,
	ErrNotificationNotFound: NotFound,
	ErrSavedSearchNotFound:  NotFound,
	ErrSavedSearchLimit:     BadRequest,
	ErrSavedSearchExists:    BadRequest,
	ErrReportNotFound:       NotFound,
	ErrIDCardRequired:       BadRequest,

	ErrAlreadyProcessed:    BadRequest,
	ErrPaymentVerification: BadRequest,
	ErrAmountMismatch:      BadRequest,
	ErrGatewayUnavailable:  UpstreamError,

	ErrFileNotSupported: BadRequest,
	ErrFileMissing:      BadRequest,

	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
