package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel mirrors the 'chats' table. ID is the canonical "<low>_<high>" participant key.
type ChatModel struct {
	ID            string    `gorm:"type:varchar(80);primaryKey"`
	ParticipantA  uuid.UUID `gorm:"type:uuid;not null;index"`
	ParticipantB  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	LastMessageAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel mirrors the 'chat_messages' table.
type MessageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ChatID   string    `gorm:"type:varchar(80);not null;index:idx_chat_messages_chat_sent"`
	SenderID uuid.UUID `gorm:"type:uuid;not null"`
	Text     string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null;index:idx_chat_messages_chat_sent"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "chat_messages"
}
