// Package securechannel implements the mobile pairing channel with NaCl
// anonymous sealed boxes. The companion app seals bridge messages to the
// channel's public key; only the session holding the private key can open them.
package securechannel

import (
	"crypto/rand"

	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length of both halves of a channel key pair.
const KeySize = 32

var ErrOpenFailed = errors.New("sealed message could not be opened")

type sealedBoxChannel struct{}

// NewSealedBoxChannel creates the NaCl-backed secure channel
func NewSealedBoxChannel() service.SecureChannel {
	return sealedBoxChannel{}
}

func (sealedBoxChannel) NewKeyPair() (publicKey, privateKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, "generate channel key pair")
	}

	return pub[:], priv[:], nil
}

func (sealedBoxChannel) Open(sealed, publicKey, privateKey []byte) ([]byte, error) {
	pub, err := toKey(publicKey)
	if err != nil {
		return nil, err
	}
	priv, err := toKey(privateKey)
	if err != nil {
		return nil, err
	}

	message, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, errors.WithStack(ErrOpenFailed)
	}

	return message, nil
}

// Seal encrypts message to publicKey the way the companion app does.
func Seal(message, publicKey []byte) ([]byte, error) {
	pub, err := toKey(publicKey)
	if err != nil {
		return nil, err
	}

	sealed, err := box.SealAnonymous(nil, message, pub, rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "seal message")
	}

	return sealed, nil
}

func toKey(b []byte) (*[KeySize]byte, error) {
	if len(b) != KeySize {
		return nil, errors.Errorf("channel key must be %d bytes, got %d", KeySize, len(b))
	}

	var key [KeySize]byte
	copy(key[:], b)

	return &key, nil
}
