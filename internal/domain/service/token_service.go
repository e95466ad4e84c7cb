package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// ExchangeClaims are the claims carried by an exchange JWT relayed over the
// mobile bridge.
type ExchangeClaims struct {
	jwt.RegisteredClaims
}

// ExchangeTokenVerifier checks exchange JWTs before they are stored on a session.
type ExchangeTokenVerifier interface {
	// Verify parses the token and validates its signature and registered claims.
	Verify(token string) (*ExchangeClaims, error)
}
