package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"
	mockRepo "makan/internal/mocks/repository"
	mockService "makan/internal/mocks/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockService.NewMockNotificationService(t),
	}
	fx.service = NewNotificationService(NotificationServiceParams{
		DeviceRepo:      fx.deviceRepo,
		NotificationSvc: fx.notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func messageEvent(recipientID uuid.UUID) *service.MessageEvent {
	return &service.MessageEvent{
		ChatID:      "chat-1",
		MessageID:   uuid.NewString(),
		SenderID:    uuid.NewString(),
		SenderName:  "Kopi Tiam",
		RecipientID: recipientID.String(),
		Text:        "Your order is ready",
		SentAt:      fixedTime,
	}
}

func devicesWithTokens(accountID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:        uuid.New(),
			AccountID: accountID,
			FCMToken:  fmt.Sprintf("token-%d", i),
			IsActive:  true,
		})
	}

	return devices
}

func TestNotificationService_NotifyMessage_BatchesAndPrunes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipientID := uuid.New()
	devices := devicesWithTokens(recipientID, 501)

	isOrderReady := mock.MatchedBy(func(n *service.PushNotification) bool {
		return n.Title == "Kopi Tiam" && n.Body == "Your order is ready" && n.Data["chat_id"] == "chat-1"
	})

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, recipientID).Return(devices, nil)
	fx.notificationSvc.EXPECT().MaxTokens().Return(500)
	fx.notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), isOrderReady).
		Return(&service.PushResult{Sent: 499, Failed: 1, InvalidTokens: []string{"token-7"}}, nil)
	fx.notificationSvc.EXPECT().
		Push(ctx, []string{"token-500"}, isOrderReady).
		Return(&service.PushResult{Sent: 1}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, devices[7].ID).Return(nil)

	result, err := fx.service.NotifyMessage(ctx, messageEvent(recipientID))
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Sent: 500, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotificationService_NotifyMessage_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, recipientID).Return(nil, nil)

	result, err := fx.service.NotifyMessage(ctx, messageEvent(recipientID))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestNotificationService_NotifyMessage_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, recipientID).Return(nil, errors.New("db down"))

	_, err := fx.service.NotifyMessage(ctx, messageEvent(recipientID))
	assert.True(t, usecase.IsRetryable(err))
}

func TestNotificationService_NotifyMessage_BadRecipient(t *testing.T) {
	fx := createTestNotificationService(t)
	event := messageEvent(uuid.New())
	event.RecipientID = "not-a-uuid"

	_, err := fx.service.NotifyMessage(context.Background(), event)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, usecase.IsRetryable(err))
}

func TestNotificationService_NotifyMessage_BatchErrorCountsAsFailed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipientID := uuid.New()
	event := messageEvent(recipientID)
	event.SenderName = ""
	event.Text = strings.Repeat("a", 200)

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, recipientID).Return(devicesWithTokens(recipientID, 2), nil)
	fx.notificationSvc.EXPECT().MaxTokens().Return(500)
	fx.notificationSvc.EXPECT().
		Push(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(n *service.PushNotification) bool {
			return n.Title == entity.AnonymousName &&
				strings.HasSuffix(n.Body, "…") && len([]rune(n.Body)) == maxPreviewRunes
		})).
		Return(nil, errors.New("fcm unavailable"))

	result, err := fx.service.NotifyMessage(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Failed)
}
