package notification

import (
	"context"
	"log/slog"

	"makan/config"
	"makan/internal/domain/service"
	"makan/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit on tokens per multicast request.
const MaxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewNotificationService returns the FCM sender, or a logging stand-in when no Firebase
// credentials are configured.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return &logNotificationService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService connects to FCM with a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

func (s *firebaseService) MaxTokens() int {
	return MaxMulticastTokens
}

// Push sends one multicast. Tokens FCM reports as malformed or unregistered
// are returned in InvalidTokens.
func (s *firebaseService) Push(ctx context.Context, tokens []string, n *service.PushNotification) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	batch, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Android: &messaging.AndroidConfig{
			CollapseKey: n.Data["chat_id"],
			Priority:    "high",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushResult{
		Sent:   batch.SuccessCount,
		Failed: batch.FailureCount,
	}
	for idx, resp := range batch.Responses {
		if resp.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}
