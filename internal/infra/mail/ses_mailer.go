package mail

import (
	"context"
	"log/slog"

	"makan/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

type emailSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client emailSender
	sender string
	logger *slog.Logger
}

// NewSESMailer creates a Mailer that sends plain-text mail through Amazon SES.
func NewSESMailer(client emailSender, sender string, logger *slog.Logger) service.Mailer {
	return &sesMailer{client: client, sender: sender, logger: logger}
}

func (m *sesMailer) Send(ctx context.Context, mail *service.Mail) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{mail.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(mail.Subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(mail.Body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.InfoContext(ctx, "Email sent",
		slog.String("message_id", aws.ToString(out.MessageId)),
		slog.String("subject", mail.Subject),
	)

	return nil
}
