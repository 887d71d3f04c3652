package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"
	mockService "makan/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good", service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, Roles: []string{"business", "admin"}, Type: service.TokenTypeAccess}, nil)

	c, rec := newAuthContext("Bearer good")
	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	roles, ok := GetRoles(c)
	require.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleBusiness}, roles)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("expired", service.TokenTypeAccess).Return(nil, errors.New("token is expired"))

	for _, header := range []string{"", "Token abc", "Bearer expired"} {
		c, rec := newAuthContext(header)
		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	c, rec := newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RolePersonal})
	require.NoError(t, m.RequireRole(entity.RoleBusiness)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleBusiness})
	require.NoError(t, m.RequireRole(entity.RoleBusiness)(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBiz  string
	}{
		{
			name:     "wrapped app error",
			err:      errors.Wrap(domainerrors.ErrRecipeNotFound.WrapMessage("recipe not found"), "handler"),
			wantCode: http.StatusNotFound,
			wantBiz:  domainerrors.ErrRecipeNotFound.ErrorCode(),
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantCode: http.StatusMethodNotAllowed,
			wantBiz:  "METHOD_NOT_ALLOWED",
		},
		{
			name:     "body limit",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBiz:  "PAYLOAD_TOO_LARGE",
		},
		{
			name:     "unnamed echo error",
			err:      echo.NewHTTPError(http.StatusTeapot),
			wantCode: http.StatusTeapot,
			wantBiz:  "HTTP_ERROR",
		},
		{
			name:     "unknown error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBiz:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBiz, body.Error.Code)
		})
	}
}
