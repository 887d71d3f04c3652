package mail

import (
	"context"
	"log/slog"

	"makan/config"
	"makan/internal/domain/constants"
	"makan/internal/domain/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for Mailer, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mail transport based on configuration
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		logger.Info("Using log mailer")

		return NewLogMailer(logger), nil
	}

	switch cfg.Provider {
	case constants.MailProviderSES:
		if cfg.Sender == "" {
			return nil, errors.New("sender is required for ses provider")
		}
		opts := []func(*awsconfig.LoadOptions) error{}
		if params.Config.AWS != nil && params.Config.AWS.Region != "" {
			opts = append(opts, awsconfig.WithRegion(params.Config.AWS.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load aws config")
		}
		logger.Info("Using Amazon SES mailer", slog.String("region", awsCfg.Region))

		return NewSESMailer(ses.NewFromConfig(awsCfg), cfg.Sender, logger), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
