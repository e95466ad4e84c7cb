// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"walletauth/config"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// exchangeTokenVerifier checks exchange JWTs with a shared HMAC secret.
type exchangeTokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewExchangeTokenVerifier returns nil when no exchangeJWT secret is configured;
// bridge tokens are then stored without signature checks.
func NewExchangeTokenVerifier(cfg *config.Config) service.ExchangeTokenVerifier {
	if cfg.ExchangeJWT == nil || cfg.ExchangeJWT.Secret == "" {
		return nil
	}

	return newExchangeTokenVerifier(cfg.ExchangeJWT.Secret, cfg.ExchangeJWT.Issuer, cfg.ExchangeJWT.Leeway, time.Now)
}

func newExchangeTokenVerifier(secret, issuer string, leeway time.Duration, now func() time.Time) *exchangeTokenVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(now),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &exchangeTokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// Verify parses the token and validates its signature and registered claims.
func (v *exchangeTokenVerifier) Verify(tokenString string) (*service.ExchangeClaims, error) {
	claims := &service.ExchangeClaims{}

	_, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "verify exchange token")
	}

	return claims, nil
}
