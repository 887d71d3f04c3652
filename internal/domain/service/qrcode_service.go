package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateContactQR renders a PNG that lets other users open a chat with the business account.
	GenerateContactQR(accountID uuid.UUID) ([]byte, error)

	// ParseContactQR parses scanned QR text and returns the business account ID.
	ParseContactQR(qrData string) (uuid.UUID, error)
}
