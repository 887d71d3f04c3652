package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"makan/config"
	"makan/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishMessageEvent(t *testing.T) {
	var received PushEnvelope
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "chat-messages", newDiscardLogger())
	event := &service.MessageEvent{
		RequestID:   "req-1",
		ChatID:      "a_b",
		MessageID:   "m-1",
		SenderID:    "a",
		SenderName:  "Ali",
		RecipientID: "b",
		Text:        "hello",
		SentAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishMessageEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "m-1", received.Message.MessageID)
	assert.Equal(t, "b", received.Message.Attributes["recipient_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, "projects/local/subscriptions/chat-messages-push", received.Subscription)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.MessageEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", newDiscardLogger())

	err := publisher.PublishMessageEvent(context.Background(), &service.MessageEvent{MessageID: "m-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)

	publisher, err = NewEventPublisher(PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      "local",
			LocalEndpoint: "http://localhost:8081/push",
		}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "makan"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestNewPushEnvelope(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("MYT", 8*3600))

	env, err := newPushEnvelope(&service.MessageEvent{ChatID: "a_b", MessageID: "m-3"}, "sub", now)
	require.NoError(t, err)

	assert.Equal(t, "sub", env.Subscription)
	assert.Equal(t, "m-3", env.Message.MessageID)
	assert.Equal(t, "2024-05-05T23:08:09Z", env.Message.PublishTime)
	assert.NotContains(t, env.Message.Attributes, "request_id")
}
