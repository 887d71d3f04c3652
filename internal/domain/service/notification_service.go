package service

import (
	"context"
)

// PushNotification is the payload shown on a device.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult reports how a multicast went. InvalidTokens lists tokens the
// provider says will never succeed and should be forgotten.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device tokens.
type NotificationService interface {
	// MaxTokens is the most tokens a single Push call accepts.
	MaxTokens() int
	Push(ctx context.Context, tokens []string, notification *PushNotification) (*PushResult, error)
}
