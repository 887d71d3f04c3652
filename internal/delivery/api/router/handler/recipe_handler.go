package handler

import (
	"log/slog"
	"net/http"

	"makan/config"
	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// RecipeHandler serves recipe endpoints.
type RecipeHandler struct {
	recipeUC      usecase.RecipeUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC:      params.RecipeUC,
		maxImageBytes: params.Config.Blob.MaxImageBytes,
		logger:        params.Logger,
	}
}

// CreateRecipeRequest is the body of a new recipe.
type CreateRecipeRequest struct {
	Title        string              `json:"title" validate:"required"`
	Servings     int                 `json:"servings" validate:"required,min=1"`
	Ingredients  []entity.Ingredient `json:"ingredients" validate:"required,min=1"`
	Instructions string              `json:"instructions"`
}

// CreateRecipe publishes a recipe with its images.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateRecipeRequest
	images, ok, err := bindContent(c, &req, h.maxImageBytes)
	if !ok {
		return err
	}

	recipe, err := h.recipeUC.CreateRecipe(c.Request().Context(), userID, &usecase.CreateRecipeInput{
		Title:        req.Title,
		Servings:     req.Servings,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Images:       images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe)
}

// ListRecipes lists recipes newest first, optionally for one author.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	authorID, ok := authorQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid author ID")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipes, err := h.recipeUC.ListRecipes(c.Request().Context(), authorID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes)
}

// GetRecipe returns one recipe.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	recipeID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	recipe, err := h.recipeUC.GetRecipe(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

// DeleteRecipe removes one of the caller's recipes.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	if err := h.recipeUC.DeleteRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ScaleRecipe returns the recipe adjusted to the servings query parameter.
func (h *RecipeHandler) ScaleRecipe(c echo.Context) error {
	recipeID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	servings, err := queryInt(c, "servings")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.ScaleRecipe(c.Request().Context(), recipeID, servings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

// authorQuery reads the optional author filter. uuid.Nil means every author.
func authorQuery(c echo.Context) (uuid.UUID, bool) {
	raw := c.QueryParam("author")
	if raw == "" {
		return uuid.Nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
