package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// SavedEntry is a saved item with the content it points at. Exactly one of Recipe or Review is set.
type SavedEntry struct {
	Item   *entity.SavedItem `json:"item"`
	Recipe *entity.Recipe    `json:"recipe,omitempty"`
	Review *entity.Review    `json:"review,omitempty"`
}

// SavedUsecase manages bookmarks on recipes and reviews.
type SavedUsecase interface {
	// Toggle flips the saved state based on the stored record, not on any client-side flag.
	// It returns the state after the toggle.
	Toggle(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) (bool, error)
	// Save is idempotent: saving twice leaves a single record.
	Save(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) error
	// Unsave is idempotent: unsaving an item that is not saved is a no-op.
	Unsave(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) error
	IsSaved(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) (bool, error)
	// ListSaved returns the account's saved items newest first, skipping ones whose content is gone.
	ListSaved(ctx context.Context, accountID uuid.UUID) ([]*SavedEntry, error)
}
