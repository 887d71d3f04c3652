package repository

import (
	"context"
	"errors"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for content persistence.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrReviewNotFound = errors.New("review not found")
)

// ListOptions narrows a content listing. Zero values mean "no filter" and the store default limit.
type ListOptions struct {
	AuthorID uuid.UUID
	Limit    int
}

// RecipeRepository persists recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	// FindByIDs returns the recipes that exist, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error)
	// List returns recipes newest first.
	List(ctx context.Context, opts ListOptions) ([]*entity.Recipe, error)
	// Search matches title or author name case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*entity.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository persists stall reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Review, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Review, error)
	// Search matches title, stall name or author name case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepository persists append-only comments.
type CommentRepository interface {
	Append(ctx context.Context, comment *entity.Comment) error
	// ListByTarget returns comments oldest first.
	ListByTarget(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) ([]*entity.Comment, error)
}
