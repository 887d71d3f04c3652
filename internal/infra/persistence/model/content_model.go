package model

import (
	"time"

	"github.com/google/uuid"
)

// IngredientColumn is the JSON shape of one ingredient inside recipes.ingredients.
type IngredientColumn struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string             `gorm:"type:varchar(200);not null;index"`
	Servings     int                `gorm:"not null"`
	Ingredients  []IngredientColumn `gorm:"type:jsonb;serializer:json"`
	Instructions string             `gorm:"type:text"`
	ImageURLs    []string           `gorm:"type:jsonb;serializer:json"`
	AuthorID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	AuthorName   string             `gorm:"type:varchar(100)"`
	CreatedAt    time.Time          `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(200);not null"`
	StallName    string    `gorm:"type:varchar(100);not null;index"`
	Location     string    `gorm:"type:text"`
	OpeningHours string    `gorm:"type:varchar(100)"`
	Experience   string    `gorm:"type:text"`
	ImageURLs    []string  `gorm:"type:jsonb;serializer:json"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName   string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TargetKind string    `gorm:"type:varchar(20);not null;index:idx_comments_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_target"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName string    `gorm:"type:varchar(100)"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// SavedItemModel mirrors the 'saved_items' table. The composite primary key makes a save idempotent.
type SavedItemModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemKind  string    `gorm:"type:varchar(20);primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SavedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SavedItemModel) TableName() string {
	return "saved_items"
}
