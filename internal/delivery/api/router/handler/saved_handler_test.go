package handler

import (
	"net/http"
	"testing"

	"makan/internal/domain/entity"
	mockUsecase "makan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSavedTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockSavedUsecase) {
	savedUC := mockUsecase.NewMockSavedUsecase(t)
	h := NewSavedHandler(SavedHandlerParams{SavedUC: savedUC})

	e := newTestEcho()
	g := e.Group("/saved", asAccount(accountID, entity.RolePersonal))
	g.POST("/toggle", h.Toggle)
	g.GET("/:kind/:id", h.IsSaved)
	g.PUT("/:kind/:id", h.Save)
	g.DELETE("/:kind/:id", h.Unsave)

	return e, savedUC
}

func TestSavedHandler_Toggle(t *testing.T) {
	me, recipeID := uuid.New(), uuid.New()
	e, savedUC := newSavedTestServer(t, me)

	savedUC.EXPECT().Toggle(mock.Anything, me, entity.ItemKindRecipe, recipeID).Return(true, nil)

	rec := serveJSON(e, http.MethodPost, "/saved/toggle", `{"kind":"recipe","item_id":"`+recipeID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state SavedStateResponse
	decode(t, rec, &state)
	assert.True(t, state.Saved)
	assert.Equal(t, recipeID, state.ItemID)
}

func TestSavedHandler_Toggle_RejectsUnknownKind(t *testing.T) {
	e, _ := newSavedTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/saved/toggle", `{"kind":"stall","item_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSavedHandler_SaveAndUnsave(t *testing.T) {
	me, reviewID := uuid.New(), uuid.New()
	e, savedUC := newSavedTestServer(t, me)

	savedUC.EXPECT().Save(mock.Anything, me, entity.ItemKindReview, reviewID).Return(nil)
	savedUC.EXPECT().Unsave(mock.Anything, me, entity.ItemKindReview, reviewID).Return(nil)
	savedUC.EXPECT().IsSaved(mock.Anything, me, entity.ItemKindReview, reviewID).Return(false, nil)

	path := "/saved/review/" + reviewID.String()
	assert.Equal(t, http.StatusOK, serveJSON(e, http.MethodPut, path, "").Code)
	assert.Equal(t, http.StatusOK, serveJSON(e, http.MethodDelete, path, "").Code)

	rec := serveJSON(e, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var state SavedStateResponse
	decode(t, rec, &state)
	assert.False(t, state.Saved)

	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodPut, "/saved/stall/"+reviewID.String(), "").Code)
}
