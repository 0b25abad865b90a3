package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/mailer"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/pkg/security"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, verifyDTO *dto.VerifyEmailDTO) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetDTO *dto.ResetPasswordDTO) error
	ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error
}

type AuthServiceImpl struct {
	userRepo   repository.UserRepo
	outboxRepo repository.OutboxRepo
}

func NewAuthService(userRepo repository.UserRepo, outboxRepo repository.OutboxRepo) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(regDTO.Email))
	if !util.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if util.IsDisposableEmail(email) {
		return nil, ErrDisposableEmail
	}
	if len(regDTO.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: passwordHash,
		FirstName:      regDTO.FirstName,
		LastName:       regDTO.LastName,
		SchoolID:       regDTO.SchoolID,
		IsActive:       true,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err = s.sendVerificationCode(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResult(user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(loginDTO.Email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(loginDTO.Password, user.HashedPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.buildAuthResult(user)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl)
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, verifyDTO *dto.VerifyEmailDTO) error {
	email := strings.ToLower(strings.TrimSpace(verifyDTO.Email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	key := consts.EmailOtpKey + email
	code, err := redis.GetValue(ctx, key)
	if err != nil {
		return err
	}
	if code == "" || code != verifyDTO.Code {
		return ErrCodeIncorrect
	}

	if err = s.userRepo.UpdateUserFields(ctx, user.ID, map[string]interface{}{"is_verified": true}); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, key)

	firstName := ""
	if user.FirstName != nil {
		firstName = *user.FirstName
	}
	subject, body := mailer.WelcomeEmail(firstName)
	enqueueEmail(ctx, s.outboxRepo, email, subject, body)
	return nil
}

func (s *AuthServiceImpl) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	return s.sendVerificationCode(ctx, user)
}

// ForgotPassword responds identically whether or not the account exists, so
// the endpoint cannot be used to probe registered emails.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code := util.GenerateCode(6)
	if err = redis.SetWithExpiration(ctx, consts.PasswordResetKey+email, code, consts.PasswordResetTTL); err != nil {
		return err
	}

	subject, body := mailer.PasswordResetEmail(code)
	enqueueEmail(ctx, s.outboxRepo, email, subject, body)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, resetDTO *dto.ResetPasswordDTO) error {
	email := strings.ToLower(strings.TrimSpace(resetDTO.Email))
	if len(resetDTO.NewPassword) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrCodeIncorrect
	}

	key := consts.PasswordResetKey + email
	code, err := redis.GetValue(ctx, key)
	if err != nil {
		return err
	}
	if code == "" || code != resetDTO.Code {
		return ErrCodeIncorrect
	}

	passwordHash, err := security.HashPassword(resetDTO.NewPassword)
	if err != nil {
		return err
	}
	if err = s.userRepo.UpdateUserFields(ctx, user.ID, map[string]interface{}{"hashed_password": passwordHash}); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, key)
	return nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error {
	if len(changeDTO.NewPassword) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(changeDTO.OldPassword, user.HashedPassword); err != nil {
		return ErrOldPasswordWrong
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"hashed_password": passwordHash})
}

func (s *AuthServiceImpl) sendVerificationCode(ctx context.Context, user *model.User) error {
	code := util.GenerateCode(4)
	if err := redis.SetWithExpiration(ctx, consts.EmailOtpKey+user.Email, code, consts.EmailOtpTTL); err != nil {
		return err
	}

	subject, body := mailer.VerificationEmail(code)
	enqueueEmail(ctx, s.outboxRepo, user.Email, subject, body)
	return nil
}

func (s *AuthServiceImpl) buildAuthResult(user *model.User) (*dto.AuthResultDTO, error) {
	roles := []string{}
	if user.IsAdmin {
		roles = append(roles, security.RoleAdmin)
	}
	token, err := security.GenerateToken(user.ID, user.Email, roles)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResultDTO{
		Token: token,
		User:  toUserDTO(user, true),
	}, nil
}

// toUserDTO maps a user row to its transport shape. Private fields are
// stripped unless the caller owns the profile.
func toUserDTO(user *model.User, includePrivate bool) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)

	createdAt := user.CreatedAt
	userDTO.CreatedAt = &createdAt
	if user.School != nil {
		userDTO.SchoolName = &user.School.Name
	}
	if !includePrivate {
		userDTO.Email = ""
		userDTO.MatricNumber = nil
		userDTO.IsAdmin = false
		userDTO.IsActive = false
	}
	return userDTO
}
