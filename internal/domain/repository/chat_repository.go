package repository

import (
	"context"
	"errors"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChatNotFound is returned when no chat exists for the key.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository persists two-party chats and their messages.
type ChatRepository interface {
	// CreateOrGet inserts the chat if its key is unused, otherwise returns the stored chat.
	// It is a single conditional write; created reports which happened.
	CreateOrGet(ctx context.Context, chat *entity.Chat) (stored *entity.Chat, created bool, err error)

	FindByID(ctx context.Context, id entity.ChatID) (*entity.Chat, error)

	// ListByParticipant returns the account's chats, most recently active first.
	ListByParticipant(ctx context.Context, accountID uuid.UUID) ([]*entity.Chat, error)

	// AppendMessage stores the message and bumps the chat's last activity to sentAt.
	AppendMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns the chat's messages oldest first.
	ListMessages(ctx context.Context, id entity.ChatID) ([]*entity.Message, error)

	// LastMessage returns the newest message, or nil when the chat is empty.
	LastMessage(ctx context.Context, id entity.ChatID) (*entity.Message, error)
}
