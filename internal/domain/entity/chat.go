package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatID is the canonical, order-independent key of a two-party chat.
type ChatID string

// NewChatID derives the chat key from the participant pair. NewChatID(a, b) == NewChatID(b, a).
func NewChatID(a, b uuid.UUID) ChatID {
	first, second := a.String(), b.String()
	if second < first {
		first, second = second, first
	}

	return ChatID(first + "_" + second)
}

// ParseChatID splits a chat key back into its sorted participants.
func ParseChatID(raw string) (ChatID, [2]uuid.UUID, bool) {
	left, right, found := strings.Cut(raw, "_")
	if !found {
		return "", [2]uuid.UUID{}, false
	}

	a, err := uuid.Parse(left)
	if err != nil {
		return "", [2]uuid.UUID{}, false
	}
	b, err := uuid.Parse(right)
	if err != nil {
		return "", [2]uuid.UUID{}, false
	}

	id := NewChatID(a, b)
	if string(id) != raw {
		return "", [2]uuid.UUID{}, false
	}

	return id, [2]uuid.UUID{a, b}, true
}

// String returns the string representation of the ChatID.
func (id ChatID) String() string {
	return string(id)
}

// Chat is a two-party conversation. Participants are stored in canonical order.
type Chat struct {
	ID            ChatID       `json:"id"`
	Participants  [2]uuid.UUID `json:"participants"`
	CreatedAt     time.Time    `json:"created_at"`
	LastMessageAt *time.Time   `json:"last_message_at,omitempty"`
}

// NewChat builds the chat between two accounts.
func NewChat(a, b uuid.UUID, now time.Time) *Chat {
	id := NewChatID(a, b)
	_, participants, _ := ParseChatID(string(id))

	return &Chat{ID: id, Participants: participants, CreatedAt: now}
}

// HasParticipant reports whether the account takes part in the chat.
func (c *Chat) HasParticipant(accountID uuid.UUID) bool {
	return c.Participants[0] == accountID || c.Participants[1] == accountID
}

// Counterpart returns the other participant.
func (c *Chat) Counterpart(accountID uuid.UUID) uuid.UUID {
	if c.Participants[0] == accountID {
		return c.Participants[1]
	}

	return c.Participants[0]
}

// Message is a single chat message with a server-assigned timestamp.
type Message struct {
	ID       uuid.UUID `json:"id"`
	ChatID   ChatID    `json:"chat_id"`
	SenderID uuid.UUID `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}
