package service

import (
	"context"
	"time"
)

// MessageEvent announces a stored chat message to the notifier worker.
type MessageEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	ChatID      string    `json:"chat_id"`
	MessageID   string    `json:"message_id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	RecipientID string    `json:"recipient_id"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sent_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessageEvent publishes a chat message event for async fan-out.
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
