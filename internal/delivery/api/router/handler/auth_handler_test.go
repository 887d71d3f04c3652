package handler

import (
	"net/http"
	"testing"

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

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: nil})

	e := newTestEcho()
	e.POST("/auth/register/personal", h.RegisterPersonal)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/password/forgot", h.ForgotPassword)

	return e, authUC
}

func TestAuthHandler_RegisterPersonal(t *testing.T) {
	e, authUC := newAuthTestServer(t)
	accountID := uuid.New()

	authUC.EXPECT().
		RegisterPersonal(mock.Anything, &usecase.RegisterPersonalInput{
			FullName: "Siti Aminah",
			Email:    "siti@example.com",
			Password: "secret1",
		}).
		Return(&usecase.RegisterOutput{Account: &entity.Account{
			ID:       accountID,
			Kind:     entity.AccountKindPersonal,
			Email:    "siti@example.com",
			Personal: &entity.PersonalProfile{FullName: "Siti Aminah"},
		}}, nil)

	rec := serveJSON(e, http.MethodPost, "/auth/register/personal",
		`{"full_name":"Siti Aminah","email":"siti@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var profile ProfileResponse
	decode(t, rec, &profile)
	assert.Equal(t, accountID, profile.ID)
	assert.Equal(t, "Siti Aminah", profile.Personal.FullName)
	assert.Nil(t, profile.Business)
}

func TestAuthHandler_RegisterPersonal_ValidationError(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := serveJSON(e, http.MethodPost, "/auth/register/personal", `{"full_name":"Siti","email":"nope","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec, nil).Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	rec := serveJSON(e, http.MethodPost, "/auth/login", `{"email":"siti@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decode(t, rec, nil).Error.Code)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.EXPECT().RequestPasswordReset(mock.Anything, "ghost@example.com").Return(nil)

	rec := serveJSON(e, http.MethodPost, "/auth/password/forgot", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
