package qrcode

import (
	"encoding/base64"
	"encoding/json"

	"walletauth/config"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// PairingType marks QR payloads that open a mobile pairing channel.
const PairingType = "pairing"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the optional qrCode config block
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePairingQR renders the pairing payload as a PNG
func (s *qrcodeService) GeneratePairingQR(data *service.PairingQRData) ([]byte, error) {
	if data == nil {
		return nil, errors.New("pairing data is required")
	}

	payload := *data
	payload.Type = PairingType

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePairingQR parses the text content of a pairing QR code
func (s *qrcodeService) ParsePairingQR(qrData string) (*service.PairingQRData, error) {
	var data service.PairingQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != PairingType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.SessionID == uuid.Nil || data.ChannelID == uuid.Nil {
		return nil, errors.New("QR code is missing session or channel id")
	}
	if _, err := base64.StdEncoding.DecodeString(data.PublicKey); err != nil || data.PublicKey == "" {
		return nil, errors.New("failed to parse public key")
	}

	return &data, nil
}
