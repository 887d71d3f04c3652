package impl

import (
	"context"
	"log/slog"
	"slices"
	"unicode/utf8"

	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPreviewRunes caps the message text shown in the notification body.
const maxPreviewRunes = 120

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyMessage pushes a chat message to the recipient's active devices and prunes devices
// whose tokens Firebase rejects.
func (s *notificationService) NotifyMessage(ctx context.Context, event *service.MessageEvent) (*usecase.NotificationResult, error) {
	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid recipient_id")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, recipientID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to fetch recipient devices"))
	}

	result := &usecase.NotificationResult{}
	if len(devices) == 0 {
		s.log(ctx).Debug("Recipient has no active devices", slog.String("recipientID", event.RecipientID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	push := &service.PushNotification{
		Title: event.SenderName,
		Body:  preview(event.Text),
		Data: map[string]string{
			"type":       "chat_message",
			"chat_id":    event.ChatID,
			"message_id": event.MessageID,
			"sender_id":  event.SenderID,
		},
	}
	if push.Title == "" {
		push.Title = entity.AnonymousName
	}

	batchSize := s.notificationSvc.MaxTokens()
	var invalidTokens []string
	for batch := range slices.Chunk(tokens, batchSize) {
		sent, err := s.notificationSvc.Push(ctx, batch, push)
		if err != nil {
			// Keep going with the other batches.
			s.log(ctx).Error("Failed to send notification batch", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent.Sent
		result.Failed += sent.Failed
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.log(ctx).Warn("Failed to remove device with invalid token", slog.Any("deviceID", device.ID), slog.Any("error", err))

			continue
		}
		result.InvalidTokens++
	}

	s.log(ctx).Info("Message notification sent",
		slog.String("chatID", event.ChatID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= maxPreviewRunes {
		return text
	}

	runes := []rune(text)

	return string(runes[:maxPreviewRunes-1]) + "…"
}
