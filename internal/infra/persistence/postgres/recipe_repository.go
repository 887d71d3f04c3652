package postgres

import (
	"context"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements repository.RecipeRepository.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

func (repo *recipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var recipeModels []*model.RecipeModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by ids")
	}

	return toRecipeDomains(recipeModels), nil
}

func (repo *recipeRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Recipe, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if opts.AuthorID != uuid.Nil {
		query = query.Where("author_id = ?", opts.AuthorID)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var recipeModels []*model.RecipeModel
	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return toRecipeDomains(recipeModels), nil
}

func (repo *recipeRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Recipe, error) {
	pattern := containsPattern(query)

	var recipeModels []*model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("title ILIKE ? OR author_name ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return toRecipeDomains(recipeModels), nil
}

func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecipeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRecipeDomains(models []*model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(models))
	for _, recipeM := range models {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	ingredients := make([]entity.Ingredient, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}

	return &entity.Recipe{
		ID:           data.ID,
		Title:        data.Title,
		Servings:     data.Servings,
		Ingredients:  ingredients,
		Instructions: data.Instructions,
		ImageURLs:    data.ImageURLs,
		AuthorID:     data.AuthorID,
		AuthorName:   data.AuthorName,
		CreatedAt:    data.CreatedAt,
	}
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	ingredients := make([]model.IngredientColumn, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, model.IngredientColumn{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}

	return &model.RecipeModel{
		ID:           data.ID,
		Title:        data.Title,
		Servings:     data.Servings,
		Ingredients:  ingredients,
		Instructions: data.Instructions,
		ImageURLs:    data.ImageURLs,
		AuthorID:     data.AuthorID,
		AuthorName:   data.AuthorName,
		CreatedAt:    data.CreatedAt,
	}
}
