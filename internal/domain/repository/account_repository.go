// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves an account of either kind.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindPersonalByID retrieves the account only if it is a personal account.
	FindPersonalByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindBusinessByID retrieves the account only if it is a business account.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// SearchByName matches full names and stall names case-insensitively.
	SearchByName(ctx context.Context, query string, limit int) ([]*entity.Account, error)

	// Create persists a new account together with its profile variant.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account and its profile variant.
	Update(ctx context.Context, account *entity.Account) error
}
