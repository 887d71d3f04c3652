// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityUsecase turns account identifiers into display identities.
//
// A missing record never fails: unknown identifiers resolve to the anonymous identity.
// Storage failures are returned as errors.
type IdentityUsecase interface {
	Resolve(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	// ResolveMany resolves each distinct identifier once, concurrently.
	ResolveMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Identity, error)
}
