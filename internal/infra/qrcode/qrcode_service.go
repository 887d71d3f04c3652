package qrcode

import (
	"encoding/json"
	"strings"

	"makan/config"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ContactType marks a QR code that opens a chat with a business account.
const ContactType = "contact"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ContactPayload is the JSON text encoded in a business contact QR code.
type ContactPayload struct {
	AccountID string `json:"account_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EncodeContactPayload returns the text a contact QR code carries for accountID.
func EncodeContactPayload(accountID uuid.UUID) (string, error) {
	jsonData, err := json.Marshal(ContactPayload{AccountID: accountID.String(), Type: ContactType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// GenerateContactQR renders the contact payload as a PNG.
func (s *qrcodeService) GenerateContactQR(accountID uuid.UUID) ([]byte, error) {
	payload, err := EncodeContactPayload(accountID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseContactQR validates scanned QR text and returns the business account ID.
func (s *qrcodeService) ParseContactQR(qrData string) (uuid.UUID, error) {
	var data ContactPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("failed to unmarshal QR code data")
	}

	if data.Type != ContactType {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("invalid QR code type: " + data.Type)
	}

	accountID, err := uuid.Parse(data.AccountID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("failed to parse account ID")
	}

	return accountID, nil
}
