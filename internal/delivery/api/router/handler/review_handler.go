package handler

import (
	"log/slog"
	"net/http"

	"makan/config"
	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// ReviewHandler serves stall review endpoints.
type ReviewHandler struct {
	reviewUC      usecase.ReviewUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC:      params.ReviewUC,
		maxImageBytes: params.Config.Blob.MaxImageBytes,
		logger:        params.Logger,
	}
}

// CreateReviewRequest is the body of a new review.
type CreateReviewRequest struct {
	Title        string `json:"title" validate:"required"`
	StallName    string `json:"stall_name" validate:"required"`
	Location     string `json:"location"`
	OpeningHours string `json:"opening_hours"`
	Experience   string `json:"experience" validate:"required"`
}

// CreateReview publishes a review with its images.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	images, ok, err := bindContent(c, &req, h.maxImageBytes)
	if !ok {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		Title:        req.Title,
		StallName:    req.StallName,
		Location:     req.Location,
		OpeningHours: req.OpeningHours,
		Experience:   req.Experience,
		Images:       images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews lists reviews newest first, optionally for one author.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	authorID, ok := authorQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid author ID")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), authorID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetReview returns one review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// DeleteReview removes one of the caller's reviews.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
