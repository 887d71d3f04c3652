package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comment threads under recipes and reviews.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// AddCommentRequest is the body of a new comment.
type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// AddComment returns the handler that comments on an item of the given kind.
func (h *CommentHandler) AddComment(kind entity.ItemKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		targetID, ok := uuidParam(c, "id")
		if !ok {
			return response.BadRequest(c, "INVALID_ID", "Invalid "+kind.String()+" ID")
		}

		var req AddCommentRequest
		if ok, err := bindAndValidate(c, &req, "Invalid comment input"); !ok {
			return err
		}

		comment, err := h.commentUC.AddComment(c.Request().Context(), kind, targetID, userID, req.Text)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, comment)
	}
}

// ListComments returns the handler that lists comments on an item of the given kind.
func (h *CommentHandler) ListComments(kind entity.ItemKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		targetID, ok := uuidParam(c, "id")
		if !ok {
			return response.BadRequest(c, "INVALID_ID", "Invalid "+kind.String()+" ID")
		}

		comments, err := h.commentUC.ListComments(c.Request().Context(), kind, targetID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, comments)
	}
}
