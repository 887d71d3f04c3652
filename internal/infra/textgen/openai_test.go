package textgen

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCompletionServer(t *testing.T, content string, captured *map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "chat/completions")

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*captured = body

		choices := []map[string]any{}
		if content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-test",
			"choices": choices,
		})
	}))
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	var captured map[string]any
	server := newCompletionServer(t, "  Nasi lemak is a coconut rice dish.  ", &captured)
	defer server.Close()

	gen := NewOpenAIGenerator("gpt-test", 150, 0.3, newDiscardLogger(),
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL+"/"),
		option.WithMaxRetries(0),
	)

	out, err := gen.Generate(context.Background(), "what dish is this?")
	require.NoError(t, err)
	assert.Equal(t, "Nasi lemak is a coconut rice dish.", out)

	assert.Equal(t, "gpt-test", captured["model"])
	assert.InDelta(t, 150, captured["max_tokens"], 0.001)
	assert.InDelta(t, 0.3, captured["temperature"], 0.001)
}

func TestOpenAIGenerator_Generate_NoChoices(t *testing.T) {
	var captured map[string]any
	server := newCompletionServer(t, "", &captured)
	defer server.Close()

	gen := NewOpenAIGenerator("gpt-test", 150, 0.3, newDiscardLogger(),
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL+"/"),
		option.WithMaxRetries(0),
	)

	out, err := gen.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCandidateText(t *testing.T) {
	assert.Empty(t, candidateText(nil))
	assert.Empty(t, candidateText(&genai.GenerateContentResponse{}))

	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "thinking...", Thought: true},
						{Text: "Calories: 500, "},
						{Text: "Fat: 20g "},
					},
				},
			},
		},
	}
	assert.Equal(t, "Calories: 500, Fat: 20g", candidateText(res))
}

func TestUnconfiguredGenerator(t *testing.T) {
	_, err := unconfiguredGenerator{}.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
