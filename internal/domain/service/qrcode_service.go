package service

import (
	"github.com/google/uuid"
)

// PairingQRData is what the companion app reads from the pairing QR code
type PairingQRData struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	ChannelID uuid.UUID `json:"channel_id"`
	PublicKey string    `json:"public_key"` // base64, std encoding
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR renders the pairing payload as a PNG
	GeneratePairingQR(data *PairingQRData) ([]byte, error)

	// ParsePairingQR parses the text content of a pairing QR code
	ParsePairingQR(qrData string) (*PairingQRData, error)
}
