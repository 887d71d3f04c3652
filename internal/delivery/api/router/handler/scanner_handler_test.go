package handler

import (
	"net/http"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScannerTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockScannerUsecase) {
	scannerUC := mockUsecase.NewMockScannerUsecase(t)
	h := NewScannerHandler(ScannerHandlerParams{
		ScannerUC: scannerUC,
		Config:    &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}},
	})

	e := newTestEcho()
	g := e.Group("/scanner", asAccount(accountID, entity.RolePersonal))
	g.POST("/dish", h.IdentifyDish)
	g.POST("/healthier", h.HealthierOptions)
	g.POST("/dietary", h.DietaryAlternatives)

	return e, scannerUC
}

func TestScannerHandler_IdentifyDish(t *testing.T) {
	e, scannerUC := newScannerTestServer(t, uuid.New())

	scannerUC.EXPECT().IdentifyDish(mock.Anything, pngHeader).Return(&usecase.DishResult{
		Outcome:     usecase.DishOutcomeIdentified,
		Labels:      []service.Label{{Description: "Laksa", Score: 0.93}},
		Description: "A spicy noodle soup.",
	}, nil)

	body, contentType := multipartBody(t, "", "image", pngHeader)
	rec := serve(e, http.MethodPost, "/scanner/dish", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	var result usecase.DishResult
	decode(t, rec, &result)
	assert.Equal(t, usecase.DishOutcomeIdentified, result.Outcome)
	assert.Equal(t, "Laksa", result.Labels[0].Description)
}

func TestScannerHandler_IdentifyDish_VisionFailure(t *testing.T) {
	e, scannerUC := newScannerTestServer(t, uuid.New())

	scannerUC.EXPECT().IdentifyDish(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrVisionFailed.WrapMessage("quota exceeded"))

	body, contentType := multipartBody(t, "", "image", pngHeader)
	rec := serve(e, http.MethodPost, "/scanner/dish", body, contentType)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, domainerrors.ErrVisionFailed.ErrorCode(), decode(t, rec, nil).Error.Code)
}

func TestScannerHandler_HealthierOptions(t *testing.T) {
	e, scannerUC := newScannerTestServer(t, uuid.New())

	scannerUC.EXPECT().HealthierOptions(mock.Anything, []entity.Ingredient{{Name: "spinach", Quantity: 1, Unit: "cup"}}).
		Return("All ingredients are already healthy.", nil)

	rec := serveJSON(e, http.MethodPost, "/scanner/healthier", `{"ingredients":[{"name":"spinach","quantity":1,"unit":"cup"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalysisResponse
	decode(t, rec, &resp)
	assert.Equal(t, "All ingredients are already healthy.", resp.Result)
}

func TestScannerHandler_DietaryAlternatives(t *testing.T) {
	me := uuid.New()
	e, scannerUC := newScannerTestServer(t, me)

	scannerUC.EXPECT().DietaryAlternatives(mock.Anything, me, mock.Anything, "halal").Return("Use chicken instead of pork.", nil)

	rec := serveJSON(e, http.MethodPost, "/scanner/dietary", `{"ingredients":[{"name":"pork","quantity":200,"unit":"g"}],"restrictions":"halal"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
