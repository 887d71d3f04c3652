package textgen

import (
	"context"
	"log/slog"

	"makan/config"
	"makan/internal/domain/constants"
	"makan/internal/domain/service"

	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGeminiModel = "gemini-2.5-flash"

// ErrNotConfigured is returned by the stand-in generator when no provider is set.
var ErrNotConfigured = errors.New("text generation provider is not configured")

type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// Params holds dependencies for TextGenerator, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTextGenerator selects the completion backend based on configuration
func NewTextGenerator(params Params) (service.TextGenerator, error) {
	cfg := params.Config.TextGen
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Text generation provider not configured, generated answers are disabled")

		return unconfiguredGenerator{}, nil
	}

	switch cfg.Provider {
	case constants.TextGenProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required for openai provider")
		}
		logger.Info("Using OpenAI for text generation", slog.String("model", cfg.Model))

		return NewOpenAIGenerator(cfg.Model, cfg.MaxTokens, cfg.Temperature, logger, option.WithAPIKey(cfg.APIKey)), nil

	case constants.TextGenProviderGemini:
		model := cfg.Model
		if model == "" {
			model = defaultGeminiModel
		}
		logger.Info("Using Gemini for text generation", slog.String("model", model))

		return NewGeminiGenerator(params.Ctx, cfg.APIKey, model, cfg.MaxTokens, cfg.Temperature, logger)

	default:
		return nil, errors.Errorf("unknown text generation provider: %s", cfg.Provider)
	}
}
