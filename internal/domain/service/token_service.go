package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	// Fingerprint is set on reset tokens and identifies the password hash they were issued against.
	Fingerprint string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateResetToken creates a short-lived token that authorizes one password reset.
	// fingerprint ties the token to the credential it may replace.
	GenerateResetToken(userID uuid.UUID, fingerprint string) (string, error)

	// ValidateToken checks the validity of a token string of the expected type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string
}
