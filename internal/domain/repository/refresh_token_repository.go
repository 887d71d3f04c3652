// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found or has expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves an unexpired session by its token hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends one session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByAccountID ends every session of an account.
	DeleteRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) error

	// CountActiveSessionsByAccountID returns the number of unexpired sessions.
	CountActiveSessionsByAccountID(ctx context.Context, accountID uuid.UUID) (int, error)
}
