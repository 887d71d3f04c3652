package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice stores the install for pushes. Registering a known install
// again refreshes its token and reactivates it.
func (s *deviceService) RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm_token and device_id are required")
	}

	now := time.Now().UTC()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		AccountID: accountID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	s.log(ctx).Info("Device registered",
		slog.Any("accountID", accountID),
		slog.Any("deviceID", device.ID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, accountID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("fcm_token is required")
	}

	if _, err := s.ownedDevice(ctx, accountID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetAccountDevices lists the devices that currently receive pushes.
func (s *deviceService) GetAccountDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by account")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to a device until it registers again.
func (s *deviceService) DeactivateDevice(ctx context.Context, accountID, deviceID uuid.UUID) error {
	device, err := s.ownedDevice(ctx, accountID, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return nil
	}

	if err := s.deviceRepo.SetDeviceActive(ctx, deviceID, false); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, accountID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDeviceNotFound)
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.AccountID != accountID {
		return nil, errors.WithStack(domainerrors.ErrDeviceOwnershipViolation)
	}

	return device, nil
}
