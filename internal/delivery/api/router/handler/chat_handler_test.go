package handler

import (
	"net/http"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	mockUsecase "makan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockChatUsecase) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(ChatHandlerParams{ChatUC: chatUC})

	e := newTestEcho()
	g := e.Group("/chats", asAccount(accountID, entity.RolePersonal))
	g.POST("", h.StartChat)
	g.POST("/:id/messages", h.SendMessage)

	return e, chatUC
}

func TestChatHandler_StartChat(t *testing.T) {
	me, stall := uuid.New(), uuid.New()
	e, chatUC := newChatTestServer(t, me)
	chat := &entity.Chat{ID: entity.NewChatID(me, stall)}

	chatUC.EXPECT().LocateThread(mock.Anything, me, stall).Return(chat, true, nil).Once()
	chatUC.EXPECT().LocateThread(mock.Anything, me, stall).Return(chat, false, nil).Once()

	body := `{"target_id":"` + stall.String() + `"}`

	first := serveJSON(e, http.MethodPost, "/chats", body)
	require.Equal(t, http.StatusCreated, first.Code)

	var got entity.Chat
	decode(t, first, &got)
	assert.Equal(t, chat.ID, got.ID)

	second := serveJSON(e, http.MethodPost, "/chats", body)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestChatHandler_StartChat_MissingTarget(t *testing.T) {
	e, _ := newChatTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/chats", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_SendMessage_NotParticipant(t *testing.T) {
	me := uuid.New()
	e, chatUC := newChatTestServer(t, me)
	chatID := entity.NewChatID(uuid.New(), uuid.New())

	chatUC.EXPECT().SendMessage(mock.Anything, chatID, me, "hello").
		Return(nil, domainerrors.ErrNotChatParticipant.WrapMessage("not in chat"))

	rec := serveJSON(e, http.MethodPost, "/chats/"+string(chatID)+"/messages", `{"text":"hello"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrNotChatParticipant.ErrorCode(), decode(t, rec, nil).Error.Code)
}
