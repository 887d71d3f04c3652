package mail

import (
	"context"
	"log/slog"

	"makan/internal/domain/service"
)

// logMailer writes mail to the log instead of delivering it. Used in development.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that only logs outgoing mail.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, mail *service.Mail) error {
	m.logger.InfoContext(ctx, "[LogMailer] Email not delivered",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.String("body", mail.Body),
	)

	return nil
}
