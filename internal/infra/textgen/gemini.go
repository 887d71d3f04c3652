package textgen

import (
	"context"
	"log/slog"
	"strings"

	"makan/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
	logger      *slog.Logger
}

// NewGeminiGenerator creates a TextGenerator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, maxTokens int, temperature float64, logger *slog.Logger) (service.TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &geminiGenerator{
		client:      client,
		model:       model,
		maxTokens:   int32(maxTokens), //nolint:gosec // bounded by config
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to generate content")
	}

	return candidateText(res), nil
}

func candidateText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String())
}
