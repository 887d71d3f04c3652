package handler

import (
	"net/http"

	"makan/internal/delivery/api/response"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SearchHandler serves free-text search over recipes and reviews.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(searchUC usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// SearchContent matches the q query parameter.
func (h *SearchHandler) SearchContent(c echo.Context) error {
	result, err := h.searchUC.SearchContent(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
