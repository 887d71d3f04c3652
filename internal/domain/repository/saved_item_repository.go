package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// SavedItemRepository persists bookmarks keyed by (account, item kind, item).
//
// Implementations must make Insert a conditional write so that concurrent saves
// of the same key never produce two records.
type SavedItemRepository interface {
	// Insert stores the item if no record exists for its key. created is false when one already did.
	Insert(ctx context.Context, item *entity.SavedItem) (created bool, err error)

	// Delete removes the record for the key. deleted is false when there was nothing to remove.
	Delete(ctx context.Context, key entity.SavedItemKey) (deleted bool, err error)

	// Toggle removes the record for the item's key if one exists, otherwise runs allowInsert and
	// stores the item. Concurrent toggles of the same key are serialized by the store.
	Toggle(ctx context.Context, item *entity.SavedItem, allowInsert func(context.Context) error) (saved bool, err error)

	// Exists reports whether a record exists for the key.
	Exists(ctx context.Context, key entity.SavedItemKey) (bool, error)

	// ListByAccount returns the account's saved items, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.SavedItem, error)
}
