package service

// SecureChannel creates key pairs for mobile pairing and opens messages the
// companion app sealed to the channel's public key.
type SecureChannel interface {
	// NewKeyPair returns a fresh public/private key pair
	NewKeyPair() (publicKey, privateKey []byte, err error)

	// Open decrypts a sealed message addressed to the key pair
	Open(sealed, publicKey, privateKey []byte) ([]byte, error)
}
