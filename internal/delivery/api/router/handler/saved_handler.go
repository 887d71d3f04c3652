package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SavedHandlerParams holds dependencies for SavedHandler, injected by Fx.
type SavedHandlerParams struct {
	fx.In

	SavedUC usecase.SavedUsecase
	Logger  *slog.Logger
}

// SavedHandler serves bookmarks on recipes and reviews.
type SavedHandler struct {
	savedUC usecase.SavedUsecase
	logger  *slog.Logger
}

// NewSavedHandler is the constructor for SavedHandler.
func NewSavedHandler(params SavedHandlerParams) *SavedHandler {
	return &SavedHandler{
		savedUC: params.SavedUC,
		logger:  params.Logger,
	}
}

// ToggleSavedRequest names the item whose saved state flips.
type ToggleSavedRequest struct {
	Kind   entity.ItemKind `json:"kind" validate:"required,oneof=recipe review"`
	ItemID uuid.UUID       `json:"item_id" validate:"required"`
}

// SavedStateResponse reports whether an item is saved.
type SavedStateResponse struct {
	Kind   entity.ItemKind `json:"kind"`
	ItemID uuid.UUID       `json:"item_id"`
	Saved  bool            `json:"saved"`
}

// ListSaved returns the caller's saved items, newest first.
func (h *SavedHandler) ListSaved(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.savedUC.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// Toggle flips the saved state of an item and returns the new state.
func (h *SavedHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ToggleSavedRequest
	if ok, err := bindAndValidate(c, &req, "Invalid saved item input"); !ok {
		return err
	}

	saved, err := h.savedUC.Toggle(c.Request().Context(), userID, req.Kind, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SavedStateResponse{Kind: req.Kind, ItemID: req.ItemID, Saved: saved})
}

// Save marks the item in the path as saved. Repeating it changes nothing.
func (h *SavedHandler) Save(c echo.Context) error {
	return h.setSaved(c, true)
}

// Unsave clears the saved mark of the item in the path. Repeating it changes nothing.
func (h *SavedHandler) Unsave(c echo.Context) error {
	return h.setSaved(c, false)
}

func (h *SavedHandler) setSaved(c echo.Context, saved bool) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	kind, itemID, ok := savedItemParams(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid saved item")
	}

	ctx := c.Request().Context()

	var err error
	if saved {
		err = h.savedUC.Save(ctx, userID, kind, itemID)
	} else {
		err = h.savedUC.Unsave(ctx, userID, kind, itemID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SavedStateResponse{Kind: kind, ItemID: itemID, Saved: saved})
}

// IsSaved reports the saved state of the item in the path.
func (h *SavedHandler) IsSaved(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	kind, itemID, ok := savedItemParams(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid saved item")
	}

	saved, err := h.savedUC.IsSaved(c.Request().Context(), userID, kind, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SavedStateResponse{Kind: kind, ItemID: itemID, Saved: saved})
}

func savedItemParams(c echo.Context) (entity.ItemKind, uuid.UUID, bool) {
	kind := entity.ItemKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", uuid.Nil, false
	}

	itemID, ok := uuidParam(c, "id")

	return kind, itemID, ok
}
