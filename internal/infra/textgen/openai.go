package textgen

import (
	"context"
	"log/slog"
	"strings"

	"makan/internal/domain/service"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
)

type openAIGenerator struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	logger      *slog.Logger
}

// NewOpenAIGenerator creates a TextGenerator backed by the OpenAI chat completions API.
func NewOpenAIGenerator(model string, maxTokens int, temperature float64, logger *slog.Logger, opts ...option.RequestOption) service.TextGenerator {
	return &openAIGenerator{
		client:      openai.NewClient(opts...),
		model:       model,
		maxTokens:   int64(maxTokens),
		temperature: temperature,
		logger:      logger,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(g.model),
		MaxTokens:   openai.Int(g.maxTokens),
		Temperature: openai.Float(g.temperature),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create chat completion")
	}

	if len(completion.Choices) == 0 {
		g.logger.WarnContext(ctx, "OpenAI returned no choices", slog.String("model", g.model))

		return "", nil
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
