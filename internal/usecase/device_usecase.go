package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, accountID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetAccountDevices retrieves all active devices for an account
	GetAccountDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device until it is registered again
	DeactivateDevice(ctx context.Context, accountID, deviceID uuid.UUID) error
}
