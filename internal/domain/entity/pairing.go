package entity

import (
	"time"

	"github.com/google/uuid"
)

// PairingChannel is the secure channel between a web session and the
// companion app. The private key stays server side.
type PairingChannel struct {
	ChannelID  uuid.UUID `json:"channelId"`
	PublicKey  []byte    `json:"publicKey"`
	PrivateKey []byte    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p *PairingChannel) Clone() *PairingChannel {
	if p == nil {
		return nil
	}

	out := *p
	out.PublicKey = append([]byte(nil), p.PublicKey...)
	out.PrivateKey = append([]byte(nil), p.PrivateKey...)

	return &out
}
