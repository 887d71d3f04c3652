package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"makan/internal/domain/service"

	"github.com/pkg/errors"
)

const localPublishTimeout = 5 * time.Second

// PushEnvelope is the JSON body Pub/Sub push subscriptions POST to a worker.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// newPushEnvelope wraps an event the way a push subscription named subscription would deliver it.
func newPushEnvelope(event *service.MessageEvent, subscription string, now time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = event.MessageID
	env.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return env, nil
}

// localHTTPPublisher posts chat events straight to the notifier so local
// development needs no Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	logger       *slog.Logger
}

func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = "chat-messages"
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		client:       &http.Client{Timeout: localPublishTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent) error {
	env, err := newPushEnvelope(event, p.subscription, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to post event to %s", p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("notifier returned status %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Chat event delivered to local notifier",
		slog.String("message_id", event.MessageID),
		slog.String("chat_id", event.ChatID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
