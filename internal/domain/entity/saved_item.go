package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedItemKey identifies a saved item. At most one SavedItem exists per key.
type SavedItemKey struct {
	AccountID uuid.UUID
	ItemKind  ItemKind
	ItemID    uuid.UUID
}

// String renders the key as a stable document identifier.
func (k SavedItemKey) String() string {
	return k.AccountID.String() + "_" + string(k.ItemKind) + "_" + k.ItemID.String()
}

// SavedItem is a bookmark linking an account to a recipe or review.
// Its existence means "saved".
type SavedItem struct {
	AccountID uuid.UUID `json:"account_id"`
	ItemKind  ItemKind  `json:"item_kind"`
	ItemID    uuid.UUID `json:"item_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// Key returns the identity of this saved item.
func (s *SavedItem) Key() SavedItemKey {
	return SavedItemKey{AccountID: s.AccountID, ItemKind: s.ItemKind, ItemID: s.ItemID}
}
