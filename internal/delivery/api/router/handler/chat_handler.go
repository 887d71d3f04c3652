package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves two-party chats.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// StartChatRequest names the account to talk to.
type StartChatRequest struct {
	TargetID uuid.UUID `json:"target_id" validate:"required"`
}

// StartChatFromQRRequest carries the scanned contact QR payload.
type StartChatFromQRRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// SendMessageRequest is the body of a chat message.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// StartChat returns the chat with the target account, creating it on first contact.
func (h *ChatHandler) StartChat(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StartChatRequest
	if ok, err := bindAndValidate(c, &req, "Invalid chat input"); !ok {
		return err
	}

	chat, created, err := h.chatUC.LocateThread(c.Request().Context(), userID, req.TargetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, chatStatus(created), chat)
}

// StartChatFromQR opens the chat with the business behind a contact QR code.
func (h *ChatHandler) StartChatFromQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StartChatFromQRRequest
	if ok, err := bindAndValidate(c, &req, "Invalid QR input"); !ok {
		return err
	}

	chat, created, err := h.chatUC.StartFromQR(c.Request().Context(), userID, req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, chatStatus(created), chat)
}

// ListThreads returns the caller's chats, most recently active first.
func (h *ChatHandler) ListThreads(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	threads, err := h.chatUC.ListThreads(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, threads)
}

// ListMessages returns the history of a chat, oldest first.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), entity.ChatID(c.Param("id")), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage appends a message to a chat.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendMessageRequest
	if ok, err := bindAndValidate(c, &req, "Invalid message input"); !ok {
		return err
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), entity.ChatID(c.Param("id")), userID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

func chatStatus(created bool) int {
	if created {
		return http.StatusCreated
	}

	return http.StatusOK
}
