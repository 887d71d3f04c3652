package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Listing limits shared by the content use cases.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type recipeService struct {
	recipeRepo repository.RecipeRepository
	identities usecase.IdentityUsecase
	uploader   *imageUploader
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Identities usecase.IdentityUsecase
	Blobs      service.BlobStorage
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService creates the recipe use case.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		identities: params.Identities,
		uploader:   newImageUploader(params.Blobs, maxImageBytes(params.Config), params.Logger),
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRecipe uploads the images, snapshots the author's name and stores the recipe.
// Uploaded images are deleted again if the recipe cannot be stored.
func (srv *recipeService) CreateRecipe(ctx context.Context, authorID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	ingredients, err := validateRecipeInput(input)
	if err != nil {
		return nil, err
	}

	author, err := srv.identities.Resolve(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve recipe author")
	}

	urls, err := srv.uploader.UploadAll(ctx, imagePrefixRecipes, input.Images)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Servings:     input.Servings,
		Ingredients:  ingredients,
		Instructions: strings.TrimSpace(input.Instructions),
		ImageURLs:    urls,
		AuthorID:     authorID,
		AuthorName:   author.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to store recipe, removing uploaded images",
			slog.Any("recipeID", recipe.ID),
			slog.Int("images", len(urls)),
			slog.Any("error", err),
		)
		srv.uploader.DeleteAll(ctx, urls)

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Info("Recipe created", slog.Any("recipeID", recipe.ID), slog.Any("authorID", authorID))

	return recipe, nil
}

func validateRecipeInput(input *usecase.CreateRecipeInput) ([]entity.Ingredient, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if input.Servings < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("servings must be at least 1")
	}

	ingredients := make([]entity.Ingredient, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Unit = strings.TrimSpace(ing.Unit)
		if ing.Name == "" {
			continue
		}
		if ing.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("ingredient quantity cannot be negative")
		}
		ingredients = append(ingredients, ing)
	}
	if len(ingredients) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one ingredient is required")
	}

	return ingredients, nil
}

// GetRecipe returns a recipe by ID.
func (srv *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRecipeNotFound)
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

// ListRecipes returns recipes newest first.
func (srv *recipeService) ListRecipes(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx, repository.ListOptions{AuthorID: authorID, Limit: normalizeLimit(limit)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// DeleteRecipe removes a recipe owned by the account and then its images.
func (srv *recipeService) DeleteRecipe(ctx context.Context, accountID, id uuid.UUID) error {
	recipe, err := srv.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	if recipe.AuthorID != accountID {
		return errors.WithStack(domainerrors.ErrNotContentOwner)
	}

	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return errors.WithStack(domainerrors.ErrRecipeNotFound)
		}

		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.uploader.DeleteAll(ctx, recipe.ImageURLs)
	srv.log(ctx).Info("Recipe deleted", slog.Any("recipeID", id))

	return nil
}

// ScaleRecipe returns the recipe adjusted to a serving count without storing it.
func (srv *recipeService) ScaleRecipe(ctx context.Context, id uuid.UUID, servings int) (*entity.Recipe, error) {
	recipe, err := srv.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return recipe.Scale(servings), nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
