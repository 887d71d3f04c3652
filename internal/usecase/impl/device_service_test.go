package impl

import (
	"context"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service: NewDeviceService(DeviceServiceParams{
			DeviceRepo: deviceRepo,
			Logger:     newDiscardLogger(),
		}),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	accountID := uuid.New()
	storedID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.AccountID == accountID && d.FCMToken == "fcm-1" && d.DeviceID == "pixel-7" && d.IsActive
		})).
		Run(func(_ context.Context, d *entity.UserDevice) {
			// An existing install keeps its original ID.
			d.ID = storedID
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, accountID, &usecase.DeviceInfo{
		FCMToken: "fcm-1",
		DeviceID: "pixel-7",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, storedID, device.ID)
	assert.Equal(t, "android", device.Platform)
}

func TestDeviceService_RegisterDevice_RequiresToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "pixel-7"})
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RegisterDevice_StoreError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "ios"})
	assert.Nil(t, device)
	assert.ErrorContains(t, err, "failed to register device")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	accountID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		token   string
		found   *entity.UserDevice
		findErr error
		wantErr error
	}{
		{
			name:  "owner",
			token: "fcm-2",
			found: &entity.UserDevice{ID: deviceID, AccountID: accountID},
		},
		{
			name:    "blank token",
			token:   "  ",
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing device",
			token:   "fcm-2",
			findErr: repository.ErrDeviceNotFound,
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:    "someone else's device",
			token:   "fcm-2",
			found:   &entity.UserDevice{ID: deviceID, AccountID: uuid.New()},
			wantErr: domainerrors.ErrDeviceOwnershipViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			if tt.found != nil || tt.findErr != nil {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)
			}
			if tt.wantErr == nil {
				fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, tt.token).Return(nil)
			}

			err := fx.service.UpdateFCMToken(ctx, accountID, deviceID, tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), err)
		})
	}
}

func TestDeviceService_GetAccountDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	accountID := uuid.New()
	expected := []*entity.UserDevice{
		{ID: uuid.New(), AccountID: accountID, IsActive: true},
		{ID: uuid.New(), AccountID: accountID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return(expected, nil)

	devices, err := fx.service.GetAccountDevices(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: accountID, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().SetDeviceActive(ctx, deviceID, false).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, accountID, deviceID))
}

func TestDeviceService_DeactivateDevice_AlreadyInactive(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: accountID}, nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, accountID, deviceID))
}

func TestDeviceService_DeactivateDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: uuid.New(), IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceOwnershipViolation))
}
