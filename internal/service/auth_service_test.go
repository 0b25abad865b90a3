package service

import (
	"context"
	"errors"
	"testing"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/security"
)

func newAuthFixture(t *testing.T) (*fakeUserRepo, *fakeOutboxRepo, AuthService) {
	t.Helper()
	hash, err := security.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	userRepo := newFakeUserRepo(
		&model.User{ID: 1, Email: "ada@unilag.edu.ng", HashedPassword: hash, IsActive: true},
		&model.User{ID: 2, Email: "banned@unilag.edu.ng", HashedPassword: hash, IsActive: false},
		&model.User{ID: 3, Email: "done@unilag.edu.ng", HashedPassword: hash, IsActive: true, IsVerified: true},
	)
	outboxRepo := &fakeOutboxRepo{}
	return userRepo, outboxRepo, NewAuthService(userRepo, outboxRepo)
}

func TestRegisterValidation(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"invalid email", "not-an-email", "secret99", ErrInvalidEmail},
		{"disposable domain", "ada@mailinator.com", "secret99", ErrDisposableEmail},
		{"short password", "new@unilag.edu.ng", "abc", ErrPasswordTooShort},
		{"duplicate email", "Ada@unilag.edu.ng", "secret99", ErrUserExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"unknown email", "nobody@unilag.edu.ng", "correct-horse", ErrInvalidCredentials},
		{"wrong password", "ada@unilag.edu.ng", "battery-staple", ErrInvalidCredentials},
		{"disabled account", "banned@unilag.edu.ng", "correct-horse", ErrAccountDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginDTO{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginSucceeds(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	result, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "ADA@unilag.edu.ng ", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" {
		t.Fatal("Login() returned empty token")
	}
	if result.User == nil || result.User.ID != 1 {
		t.Fatalf("Login() user = %+v", result.User)
	}
}

func TestVerifyEmailGuards(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	err := svc.VerifyEmail(context.Background(), &dto.VerifyEmailDTO{Email: "nobody@unilag.edu.ng", Code: "123456"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user err = %v, want ErrUserNotFound", err)
	}

	err = svc.VerifyEmail(context.Background(), &dto.VerifyEmailDTO{Email: "done@unilag.edu.ng", Code: "123456"})
	if !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("verified user err = %v, want ErrAlreadyVerified", err)
	}
}

func TestResendVerificationGuards(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	if err := svc.ResendVerification(context.Background(), "nobody@unilag.edu.ng"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user err = %v, want ErrUserNotFound", err)
	}
	if err := svc.ResendVerification(context.Background(), "done@unilag.edu.ng"); !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("verified user err = %v, want ErrAlreadyVerified", err)
	}
}

func TestChangePassword(t *testing.T) {
	userRepo, _, svc := newAuthFixture(t)

	err := svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{OldPassword: "correct-horse", NewPassword: "abc"})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("short password err = %v, want ErrPasswordTooShort", err)
	}

	err = svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{OldPassword: "wrong", NewPassword: "new-secret"})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Fatalf("wrong old password err = %v, want ErrOldPasswordWrong", err)
	}

	err = svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{OldPassword: "correct-horse", NewPassword: "new-secret"})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	stored, ok := userRepo.updated[1]["hashed_password"].(string)
	if !ok {
		t.Fatalf("hashed_password not updated: %v", userRepo.updated[1])
	}
	if err := security.CheckPasswordHash("new-secret", stored); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}
