package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"makan/config"
	apimiddleware "makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/router/handler"
	"makan/internal/delivery/middleware"
	"makan/internal/domain/entity"
	"makan/internal/domain/service"
	mockService "makan/internal/mocks/service"
	mockUsecase "makan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	echo      *echo.Echo
	tokenSvc  *mockService.MockTokenService
	profileUC *mockUsecase.MockProfileUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}}
	tokenSvc := mockService.NewMockTokenService(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC:  profileUC,
			IdentityUC: mockUsecase.NewMockIdentityUsecase(t),
			Config:     cfg,
			Logger:     logger,
		}),
		RecipeHandler:  handler.NewRecipeHandler(handler.RecipeHandlerParams{RecipeUC: mockUsecase.NewMockRecipeUsecase(t), Config: cfg, Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mockUsecase.NewMockReviewUsecase(t), Config: cfg, Logger: logger}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: mockUsecase.NewMockCommentUsecase(t), Logger: logger}),
		SearchHandler:  handler.NewSearchHandler(mockUsecase.NewMockSearchUsecase(t)),
		SavedHandler:   handler.NewSavedHandler(handler.SavedHandlerParams{SavedUC: mockUsecase.NewMockSavedUsecase(t), Logger: logger}),
		ChatHandler:    handler.NewChatHandler(handler.ChatHandlerParams{ChatUC: mockUsecase.NewMockChatUsecase(t), Logger: logger}),
		ScannerHandler: handler.NewScannerHandler(handler.ScannerHandlerParams{ScannerUC: mockUsecase.NewMockScannerUsecase(t), Config: cfg, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		ImageHandler:   handler.NewImageHandler(mockService.NewMockBlobStorage(t)),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc),
		IdentityCache:  middleware.NewIdentityCacheMiddleware(),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return &routerFixture{echo: e, tokenSvc: tokenSvc, profileUC: profileUC}
}

func (f *routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRegisterRoutes_RegistersSurface(t *testing.T) {
	f := newRouterFixture(t)

	registered := make(map[string]bool)
	for _, route := range f.echo.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"POST /auth/login",
		"POST /auth/password/forgot",
		"PUT /api/v1/auth/password",
		"POST /api/v1/profile/avatar",
		"GET /api/v1/accounts/:id/identity",
		"GET /api/v1/recipes/:id/scaled",
		"POST /api/v1/reviews/:id/comments",
		"GET /api/v1/search",
		"POST /api/v1/saved/toggle",
		"DELETE /api/v1/saved/:kind/:id",
		"POST /api/v1/chats/qr",
		"POST /api/v1/chats/:id/messages",
		"POST /api/v1/scanner/nutrition",
		"PUT /api/v1/devices/:id/token",
		"GET /api/v1/business/qr",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestRegisterRoutes_HealthIsPublic(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)
}

func TestRegisterRoutes_APIRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/profile", "").Code)
}

func TestRegisterRoutes_BusinessQRRequiresBusinessRole(t *testing.T) {
	f := newRouterFixture(t)
	accountID := uuid.New()

	f.tokenSvc.EXPECT().ValidateToken("personal", service.TokenTypeAccess).
		Return(&service.Claims{UserID: accountID, Roles: []string{entity.RolePersonal.String()}}, nil)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/business/qr", "personal").Code)

	f.tokenSvc.EXPECT().ValidateToken("business", service.TokenTypeAccess).
		Return(&service.Claims{UserID: accountID, Roles: []string{entity.RoleBusiness.String()}}, nil)
	f.profileUC.EXPECT().ContactQRCode(mock.Anything, accountID).Return([]byte("png"), nil)

	rec := f.do(http.MethodGet, "/api/v1/business/qr", "business")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
