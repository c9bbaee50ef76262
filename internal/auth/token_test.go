package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Hour)), now))
	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
}

func TestTokenExpired_OpaqueTokens(t *testing.T) {
	t.Parallel()

	// Non-JWT tokens carry no readable expiry and never expire locally.
	assert.False(t, TokenExpired("some-opaque-token", time.Now()))
	assert.False(t, TokenExpired("", time.Now()))
}

func TestTokenExpired_NoExpiryClaim(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{Subject: "u1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	assert.False(t, TokenExpired(token, time.Now()))
}
