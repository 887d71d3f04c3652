package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// Image is an uploaded picture as received from the client.
type Image struct {
	Data []byte
}

// CreateRecipeInput defines the data required to publish a recipe.
type CreateRecipeInput struct {
	Title        string
	Servings     int
	Ingredients  []entity.Ingredient
	Instructions string
	Images       []Image
}

// CreateReviewInput defines the data required to publish a stall review.
type CreateReviewInput struct {
	Title        string
	StallName    string
	Location     string
	OpeningHours string
	Experience   string
	Images       []Image
}

// RecipeUsecase defines recipe publishing and browsing.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	// ListRecipes returns recipes newest first. uuid.Nil lists every author.
	ListRecipes(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, accountID, id uuid.UUID) error
	// ScaleRecipe returns the recipe adjusted to a serving count. Nothing is persisted.
	ScaleRecipe(ctx context.Context, id uuid.UUID, servings int) (*entity.Recipe, error)
}

// ReviewUsecase defines review publishing and browsing.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, authorID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Review, error)
	DeleteReview(ctx context.Context, accountID, id uuid.UUID) error
}

// CommentUsecase defines comments on recipes and reviews.
type CommentUsecase interface {
	AddComment(ctx context.Context, kind entity.ItemKind, targetID, authorID uuid.UUID, text string) (*entity.Comment, error)
	// ListComments returns comments oldest first.
	ListComments(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) ([]*entity.Comment, error)
}

// SearchResult groups content search hits by kind.
type SearchResult struct {
	Recipes []*entity.Recipe `json:"recipes"`
	Reviews []*entity.Review `json:"reviews"`
}

// SearchUsecase defines free-text content search.
type SearchUsecase interface {
	SearchContent(ctx context.Context, query string) (*SearchResult, error)
}
