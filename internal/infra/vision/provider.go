package vision

import (
	"context"
	"log/slog"

	"makan/config"
	"makan/internal/domain/constants"
	"makan/internal/domain/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrNotConfigured is returned by the stand-in detector when no provider is set.
var ErrNotConfigured = errors.New("vision provider is not configured")

type unconfiguredVisionService struct{}

func (unconfiguredVisionService) DetectLabels(context.Context, []byte) ([]service.Label, error) {
	return nil, ErrNotConfigured
}

// Params holds dependencies for VisionService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewVisionService selects the label detector based on configuration
func NewVisionService(params Params) (service.VisionService, error) {
	cfg := params.Config.Vision
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Vision provider not configured, image scanning is disabled")

		return unconfiguredVisionService{}, nil
	}

	switch cfg.Provider {
	case constants.VisionProviderGoogle:
		logger.Info("Using Cloud Vision for label detection")

		return NewGoogleVisionService(params.Ctx, cfg.APIKey, cfg.MaxResults, cfg.MinConfidence, logger)

	case constants.VisionProviderRekognition:
		opts := []func(*awsconfig.LoadOptions) error{}
		if params.Config.AWS != nil && params.Config.AWS.Region != "" {
			opts = append(opts, awsconfig.WithRegion(params.Config.AWS.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load aws config")
		}
		logger.Info("Using AWS Rekognition for label detection", slog.String("region", awsCfg.Region))

		return NewRekognitionService(rekognition.NewFromConfig(awsCfg), cfg.MaxResults, cfg.MinConfidence, logger), nil

	default:
		return nil, errors.Errorf("unknown vision provider: %s", cfg.Provider)
	}
}
