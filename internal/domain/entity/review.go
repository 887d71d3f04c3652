package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's write-up of a food stall visit. AuthorName is a snapshot taken at creation.
type Review struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	StallName    string    `json:"stall_name"`
	Location     string    `json:"location"`
	OpeningHours string    `json:"opening_hours"`
	Experience   string    `json:"experience"`
	ImageURLs    []string  `json:"image_urls"`
	AuthorID     uuid.UUID `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	CreatedAt    time.Time `json:"created_at"`
}
