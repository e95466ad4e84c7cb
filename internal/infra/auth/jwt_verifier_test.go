package auth

import (
	"testing"
	"time"

	"walletauth/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_exchange_secret_key_very_long_for_testing"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewExchangeTokenVerifier(t *testing.T) {
	assert.Nil(t, NewExchangeTokenVerifier(&config.Config{}))
	assert.Nil(t, NewExchangeTokenVerifier(&config.Config{ExchangeJWT: &config.ExchangeJWTConfig{Issuer: "exchange"}}))
	assert.NotNil(t, NewExchangeTokenVerifier(&config.Config{ExchangeJWT: &config.ExchangeJWTConfig{Secret: testSecret}}))
}

func TestExchangeTokenVerifier_Verify(t *testing.T) {
	verifier := newExchangeTokenVerifier(testSecret, "exchange", time.Minute, func() time.Time { return testNow })

	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "exchange",
		IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr bool
	}{
		{
			name:  "valid HS256",
			token: func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid) },
		},
		{
			name:  "valid HS512",
			token: func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid) },
		},
		{
			name: "expired within leeway",
			token: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(testNow.Add(-30 * time.Second))

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Hour))

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantErr: true,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "someone-else"

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantErr: true,
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, []byte("other"), valid) },
			wantErr: true,
		},
		{
			name:    "unsigned",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid) },
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-jwt" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(tt.token(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.Subject)
		})
	}
}
