// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the operations on login credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByAccount retrieves the credential of an account for a provider.
	FindAuthenticationByAccount(ctx context.Context, accountID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error
}
