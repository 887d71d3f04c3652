// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a credential provider.
type ProviderType string

// ProviderTypeEmail is the email/password credential.
const ProviderTypeEmail ProviderType = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this authentication record.
	AccountID      uuid.UUID    // Links this credential to the account it belongs to.
	Provider       ProviderType // The authentication provider, currently only "email".
	ProviderUserID string       // The login identifier at the provider (the email address).
	PasswordHash   string       // bcrypt hash of the password.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized session.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	AccountID uuid.UUID // Links this session to the account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time
}
