package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"walletauth/config"
	"walletauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairingData() *service.PairingQRData {
	return &service.PairingQRData{
		SessionID: uuid.New(),
		ChannelID: uuid.New(),
		PublicKey: base64.StdEncoding.EncodeToString(make([]byte, 32)),
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePairingQR(pairingData())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GeneratePairingQR_NilData(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GeneratePairingQR(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	data := pairingData()
	data.Type = PairingType

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParsePairingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, data, parsed)
}

func TestQRCodeService_ParsePairingQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	valid := pairingData()
	valid.Type = PairingType

	tests := []struct {
		name    string
		mutate  func(d *service.PairingQRData)
		raw     string
		wantErr string
	}{
		{name: "invalid json", raw: "invalid json", wantErr: "failed to unmarshal QR code data"},
		{name: "wrong type", mutate: func(d *service.PairingQRData) { d.Type = "subscription" }, wantErr: "invalid QR code type"},
		{name: "missing channel", mutate: func(d *service.PairingQRData) { d.ChannelID = uuid.Nil }, wantErr: "missing session or channel id"},
		{name: "bad key", mutate: func(d *service.PairingQRData) { d.PublicKey = "%%%" }, wantErr: "failed to parse public key"},
		{name: "empty key", mutate: func(d *service.PairingQRData) { d.PublicKey = "" }, wantErr: "failed to parse public key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			if tt.mutate != nil {
				d := *valid
				tt.mutate(&d)
				b, err := json.Marshal(d)
				require.NoError(t, err)
				raw = string(b)
			}

			_, err := svc.ParsePairingQR(raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
