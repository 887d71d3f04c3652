package handler

import (
	"log/slog"
	"net/http"

	"makan/config"
	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScannerHandlerParams holds dependencies for ScannerHandler, injected by Fx.
type ScannerHandlerParams struct {
	fx.In

	ScannerUC usecase.ScannerUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ScannerHandler serves the food scanner.
type ScannerHandler struct {
	scannerUC     usecase.ScannerUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewScannerHandler is the constructor for ScannerHandler.
func NewScannerHandler(params ScannerHandlerParams) *ScannerHandler {
	return &ScannerHandler{
		scannerUC:     params.ScannerUC,
		maxImageBytes: params.Config.Blob.MaxImageBytes,
		logger:        params.Logger,
	}
}

// IngredientsRequest carries the ingredient list to analyse.
type IngredientsRequest struct {
	Ingredients []entity.Ingredient `json:"ingredients" validate:"required,min=1"`
}

// DietaryRequest checks ingredients against restrictions. Empty restrictions fall back to the
// caller's profile.
type DietaryRequest struct {
	Ingredients  []entity.Ingredient `json:"ingredients" validate:"required,min=1"`
	Restrictions string              `json:"restrictions"`
}

// AnalysisResponse wraps generated text.
type AnalysisResponse struct {
	Result string `json:"result"`
}

// IdentifyDish labels the multipart "image" and describes the dish.
func (h *ScannerHandler) IdentifyDish(c echo.Context) error {
	image, err := formImage(c, "image", h.maxImageBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.scannerUC.IdentifyDish(c.Request().Context(), image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// HealthierOptions suggests healthier substitutes.
func (h *ScannerHandler) HealthierOptions(c echo.Context) error {
	var req IngredientsRequest
	if ok, err := bindAndValidate(c, &req, "Invalid ingredients input"); !ok {
		return err
	}

	result, err := h.scannerUC.HealthierOptions(c.Request().Context(), req.Ingredients)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AnalysisResponse{Result: result})
}

// EstimateNutrition estimates nutrition totals.
func (h *ScannerHandler) EstimateNutrition(c echo.Context) error {
	var req IngredientsRequest
	if ok, err := bindAndValidate(c, &req, "Invalid ingredients input"); !ok {
		return err
	}

	result, err := h.scannerUC.EstimateNutrition(c.Request().Context(), req.Ingredients)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AnalysisResponse{Result: result})
}

// DietaryAlternatives checks ingredients against dietary restrictions.
func (h *ScannerHandler) DietaryAlternatives(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req DietaryRequest
	if ok, err := bindAndValidate(c, &req, "Invalid ingredients input"); !ok {
		return err
	}

	result, err := h.scannerUC.DietaryAlternatives(c.Request().Context(), userID, req.Ingredients, req.Restrictions)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AnalysisResponse{Result: result})
}
