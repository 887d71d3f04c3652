package notification

import (
	"context"
	"log/slog"

	"makan/internal/domain/service"
)

// logNotificationService records notifications instead of sending them.
type logNotificationService struct {
	logger *slog.Logger
}

func (s *logNotificationService) MaxTokens() int {
	return MaxMulticastTokens
}

func (s *logNotificationService) Push(ctx context.Context, tokens []string, n *service.PushNotification) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "Push notification (not sent)",
		slog.String("title", n.Title),
		slog.String("body", n.Body),
		slog.String("chat_id", n.Data["chat_id"]),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushResult{Sent: len(tokens)}, nil
}
