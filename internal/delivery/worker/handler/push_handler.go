package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/constants"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler turns pushed chat events into device notifications.
type PushHandler struct {
	// verify is nil when push requests are trusted, as in development.
	verify         func(req *http.Request) error
	maxEventAge    time.Duration
	now            func() time.Time
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		now:            time.Now,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
	if params.Config.Notifier != nil {
		h.maxEventAge = params.Config.Notifier.MaxEventAge
	}

	ps := params.Config.PubSub
	if ps != nil && ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		v := &pushTokenVerifier{audience: ps.PushAudience, serviceAccount: ps.PushServiceAccount}
		h.verify = v.verify
	}

	return h
}

// HandlePush acknowledges with 200 unless the event should be redelivered.
// Retryable failures answer 503 and undecodable bodies answer 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Rejected unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push PubSubMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("Failed to bind push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeMessageEvent(&push)
	if err != nil {
		h.logger.Error("Failed to decode chat event",
			slog.String("pubsub_message_id", push.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := h.extractRequestID(ctx, &push, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", event.MessageID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	if h.isStale(event) {
		logger.Info("Dropping stale chat event", slog.Time("sent_at", event.SentAt))

		return c.NoContent(http.StatusOK)
	}

	result, err := h.notificationUC.NotifyMessage(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		logger.Error("Failed to notify chat message",
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("Chat message notified",
		slog.String("chat_id", event.ChatID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return c.NoContent(http.StatusOK)
}

func decodeMessageEvent(push *PubSubMessage) (*service.MessageEvent, error) {
	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.MessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a chat event")
	}

	return &event, nil
}

// isStale reports events sent longer ago than maxEventAge. Events without a
// send time are never stale.
func (h *PushHandler) isStale(event *service.MessageEvent) bool {
	if h.maxEventAge <= 0 || event.SentAt.IsZero() {
		return false
	}

	return h.now().Sub(event.SentAt) > h.maxEventAge
}

// extractRequestID prefers the message attribute, then the event field, then
// the X-Request-Id of the push itself.
func (h *PushHandler) extractRequestID(ctx context.Context, push *PubSubMessage, event *service.MessageEvent) string {
	if requestID := push.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// pushTokenVerifier checks the OIDC token Pub/Sub attaches to authenticated pushes.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
type pushTokenVerifier struct {
	audience       string
	serviceAccount string
}

func (v *pushTokenVerifier) verify(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	audience := v.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}
	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("unexpected push service account %q", email)
		}
	}

	return nil
}
