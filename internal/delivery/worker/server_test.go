package worker

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"makan/config"
	"makan/internal/delivery/worker/handler"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(t *testing.T) (http.Handler, *mockUsecase.MockNotificationUsecase) {
	cfg := &config.Config{Notifier: &config.NotifierConfig{Port: 8081, PushPath: "/pubsub/push"}}
	logger := slog.New(slog.DiscardHandler)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:         cfg,
		Logger:         logger,
		NotificationUC: notificationUC,
	})

	return newEcho(cfg, logger, pushHandler), notificationUC
}

func TestWorkerServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorkerServer_PushUsesConfiguredPath(t *testing.T) {
	srv, notificationUC := newTestServer(t)
	data := base64.StdEncoding.EncodeToString([]byte(`{"chat_id":"a_b","message_id":"m1","recipient_id":"b","text":"hi"}`))
	body := `{"message":{"data":"` + data + `","messageId":"1"},"subscription":"chat-messages-push"}`

	notificationUC.EXPECT().NotifyMessage(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{Sent: 1}, nil)

	post := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("/pubsub/push"))
	assert.Equal(t, http.StatusNotFound, post("/push"))
}
