package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// ThreadSummary is one row of an account's chat list.
type ThreadSummary struct {
	Chat        *entity.Chat     `json:"chat"`
	Counterpart *entity.Identity `json:"counterpart"`
	LastMessage *entity.Message  `json:"last_message,omitempty"`
}

// ChatUsecase locates two-party threads and carries their messages.
type ChatUsecase interface {
	// LocateThread returns the single chat between the two accounts, creating it on first contact.
	// Either side, in any interleaving, gets the same chat.
	LocateThread(ctx context.Context, accountID, targetID uuid.UUID) (chat *entity.Chat, created bool, err error)
	// StartFromQR locates the thread with the business account encoded in a contact QR payload.
	StartFromQR(ctx context.Context, accountID uuid.UUID, qrPayload string) (chat *entity.Chat, created bool, err error)
	SendMessage(ctx context.Context, chatID entity.ChatID, senderID uuid.UUID, text string) (*entity.Message, error)
	// ListMessages returns the chat history oldest first. Only participants may read it.
	ListMessages(ctx context.Context, chatID entity.ChatID, accountID uuid.UUID) ([]*entity.Message, error)
	// ListThreads returns the account's chats, most recently active first.
	ListThreads(ctx context.Context, accountID uuid.UUID) ([]*ThreadSummary, error)
}
