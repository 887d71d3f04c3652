// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the devices chat notifications are pushed to.
type DeviceRepository interface {
	// UpsertDevice stores the device keyed by account and device ID, reviving
	// it if it was deactivated, and detaches its token from any other account.
	// The stored row is written back into device.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByAccount lists the devices that should receive pushes.
	FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// SetDeviceActive toggles whether a device receives pushes.
	SetDeviceActive(ctx context.Context, deviceID uuid.UUID, active bool) error

	// DeleteDevice forgets a device whose token the push provider rejected.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
