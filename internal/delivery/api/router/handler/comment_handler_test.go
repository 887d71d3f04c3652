package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	mockUsecase "makan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockCommentUsecase) {
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(CommentHandlerParams{
		CommentUC: commentUC,
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	g := e.Group("", asAccount(accountID, entity.RolePersonal))
	g.POST("/recipes/:id/comments", h.AddComment(entity.ItemKindRecipe))
	g.GET("/recipes/:id/comments", h.ListComments(entity.ItemKindRecipe))
	g.POST("/reviews/:id/comments", h.AddComment(entity.ItemKindReview))

	return e, commentUC
}

func TestCommentHandler_AddComment(t *testing.T) {
	me := uuid.New()
	e, commentUC := newCommentTestServer(t, me)
	recipeID := uuid.New()

	commentUC.EXPECT().
		AddComment(mock.Anything, entity.ItemKindRecipe, recipeID, me, "Sedap!").
		Return(&entity.Comment{ID: uuid.New(), TargetID: recipeID, AuthorName: "Tan Wei Ming", Text: "Sedap!"}, nil)

	rec := serveJSON(e, http.MethodPost, "/recipes/"+recipeID.String()+"/comments", `{"text":"Sedap!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment entity.Comment
	decode(t, rec, &comment)
	assert.Equal(t, "Tan Wei Ming", comment.AuthorName)
}

func TestCommentHandler_AddComment_Rejected(t *testing.T) {
	e, commentUC := newCommentTestServer(t, uuid.New())
	reviewID := uuid.New()

	rec := serveJSON(e, http.MethodPost, "/reviews/"+reviewID.String()+"/comments", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec, nil).Error.Message, "text is required")

	rec = serveJSON(e, http.MethodPost, "/reviews/oops/comments", `{"text":"hi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec, nil).Error.Code)

	commentUC.EXPECT().
		AddComment(mock.Anything, entity.ItemKindReview, reviewID, mock.Anything, "hi").
		Return(nil, domainerrors.ErrReviewNotFound.WrapMessage(reviewID.String()))

	rec = serveJSON(e, http.MethodPost, "/reviews/"+reviewID.String()+"/comments", `{"text":"hi"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrReviewNotFound.ErrorCode(), decode(t, rec, nil).Error.Code)
}

func TestCommentHandler_ListComments(t *testing.T) {
	e, commentUC := newCommentTestServer(t, uuid.New())
	recipeID := uuid.New()

	commentUC.EXPECT().
		ListComments(mock.Anything, entity.ItemKindRecipe, recipeID).
		Return([]*entity.Comment{{ID: uuid.New(), Text: "first"}, {ID: uuid.New(), Text: "second"}}, nil)

	rec := serveJSON(e, http.MethodGet, "/recipes/"+recipeID.String()+"/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []entity.Comment
	decode(t, rec, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
}
