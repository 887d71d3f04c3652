package handler

import (
	"net/http"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockReviewUsecase) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{
		ReviewUC: reviewUC,
		Config:   &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}},
	})

	e := newTestEcho()
	g := e.Group("/reviews", asAccount(accountID, entity.RolePersonal))
	g.POST("", h.CreateReview)
	g.GET("/:id", h.GetReview)
	g.DELETE("/:id", h.DeleteReview)

	return e, reviewUC
}

func TestReviewHandler_CreateReview(t *testing.T) {
	me := uuid.New()
	e, reviewUC := newReviewTestServer(t, me)

	reviewUC.EXPECT().
		CreateReview(mock.Anything, me, mock.MatchedBy(func(in *usecase.CreateReviewInput) bool {
			return in.StallName == "Ah Seng Char Kway Teow" && len(in.Images) == 1
		})).
		Return(&entity.Review{ID: uuid.New(), StallName: "Ah Seng Char Kway Teow"}, nil)

	body, contentType := multipartBody(t,
		`{"title":"Best CKT","stall_name":"Ah Seng Char Kway Teow","experience":"Smoky and cheap."}`,
		"images", pngHeader)
	rec := serve(e, http.MethodPost, "/reviews", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestReviewHandler_CreateReview_MissingStallName(t *testing.T) {
	e, _ := newReviewTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/reviews", `{"title":"Best CKT","experience":"Smoky."}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec, nil).Error.Message, "stall_name is required")
}

func TestReviewHandler_GetReview_NotFound(t *testing.T) {
	e, reviewUC := newReviewTestServer(t, uuid.New())
	reviewID := uuid.New()

	reviewUC.EXPECT().GetReview(mock.Anything, reviewID).Return(nil, domainerrors.ErrReviewNotFound.WrapMessage(reviewID.String()))

	rec := serveJSON(e, http.MethodGet, "/reviews/"+reviewID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrReviewNotFound.ErrorCode(), decode(t, rec, nil).Error.Code)

	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodGet, "/reviews/not-a-uuid", "").Code)
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	me := uuid.New()
	e, reviewUC := newReviewTestServer(t, me)
	mine, theirs := uuid.New(), uuid.New()

	reviewUC.EXPECT().DeleteReview(mock.Anything, me, mine).Return(nil)
	reviewUC.EXPECT().DeleteReview(mock.Anything, me, theirs).Return(domainerrors.ErrNotContentOwner.WrapMessage("not the author"))

	assert.Equal(t, http.StatusNoContent, serveJSON(e, http.MethodDelete, "/reviews/"+mine.String(), "").Code)
	assert.Equal(t, http.StatusForbidden, serveJSON(e, http.MethodDelete, "/reviews/"+theirs.String(), "").Code)
}
