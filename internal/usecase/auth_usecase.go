package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterPersonalInput defines the data required to register a personal account.
type RegisterPersonalInput struct {
	FullName      string
	Email         string
	Password      string
	ContactNumber string
}

// RegisterBusinessInput defines the data required to register a business account.
type RegisterBusinessInput struct {
	StallName     string
	Email         string
	Password      string
	Location      string
	OpeningHours  string
	ContactNumber string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// ResetPasswordInput carries a mailed reset token and the new password.
type ResetPasswordInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordInput defines the data required to change a known password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines email/password authentication and session handling.
type AuthUsecase interface {
	RegisterPersonal(ctx context.Context, input *RegisterPersonalInput) (*RegisterOutput, error)
	RegisterBusiness(ctx context.Context, input *RegisterBusinessInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	// RequestPasswordReset mails a reset link when the email is known. It reports success either way.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	ChangePassword(ctx context.Context, accountID uuid.UUID, input *ChangePasswordInput) error
}
