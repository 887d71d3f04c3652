// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents an account's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"` // Unique device identifier from the client.
	Platform  string    `json:"platform"`  // ios or android.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
