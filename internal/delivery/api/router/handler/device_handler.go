package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest identifies one app install. DeviceID is stable per install
// while FCMToken may rotate.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers the caller's device for chat notifications.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if ok, err := bindAndValidate(c, &req, "Invalid device input"); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), accountID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetAccountDevices lists the caller's active devices.
func (h *DeviceHandler) GetAccountDevices(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetAccountDevices(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken stores a rotated FCM token.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateFCMTokenRequest
	if ok, err := bindAndValidate(c, &req, "Invalid FCM token input"); !ok {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), accountID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "FCM token updated"})
}

// DeactivateDevice stops pushes to a device. Registering it again reactivates it.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), accountID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
