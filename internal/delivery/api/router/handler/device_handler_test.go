package handler

import (
	"log/slog"
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

func newDeviceTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	g := e.Group("/devices", asAccount(accountID, entity.RolePersonal))
	g.POST("", h.RegisterDevice)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	me := uuid.New()
	e, deviceUC := newDeviceTestServer(t, me)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, me, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-7", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), AccountID: me, DeviceID: "pixel-7", IsActive: true}, nil)

	rec := serveJSON(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pixel-7","platform":"android"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	e, _ := newDeviceTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pc","platform":"windows"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	me := uuid.New()
	e, deviceUC := newDeviceTestServer(t, me)
	deviceID := uuid.New()

	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, me, deviceID, "fcm-2").Return(nil)

	rec := serveJSON(e, http.MethodPut, "/devices/"+deviceID.String()+"/token", `{"fcm_token":"fcm-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodPut, "/devices/x/token", `{"fcm_token":"fcm-2"}`).Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	me := uuid.New()
	e, deviceUC := newDeviceTestServer(t, me)
	mine, theirs := uuid.New(), uuid.New()

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, me, mine).Return(nil)
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, me, theirs).Return(domainerrors.ErrDeviceOwnershipViolation)

	assert.Equal(t, http.StatusNoContent, serveJSON(e, http.MethodDelete, "/devices/"+mine.String(), "").Code)

	rec := serveJSON(e, http.MethodDelete, "/devices/"+theirs.String(), "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "DEVICE_OWNERSHIP_VIOLATION", decode(t, rec, nil).Error.Code)
}
