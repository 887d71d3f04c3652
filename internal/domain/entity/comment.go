package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only remark on a recipe or review.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	TargetKind ItemKind  `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"` // Display name at the time of writing.
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
