package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	raw, err := tokens.SignAccess(42)
	require.NoError(t, err)

	claims, err := tokens.Verify(raw, TokenTypeAccess)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, TokenTypeAccess, claims.Type)
}

func TestChangeEmailTokenCarriesBothAddresses(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	raw, err := tokens.SignChangeEmail(7, "old@grove.test", "new@grove.test")
	require.NoError(t, err)

	claims, err := tokens.Verify(raw, TokenTypeChangeEmail)
	require.NoError(t, err)
	require.Equal(t, "old@grove.test", claims.Email)
	require.Equal(t, "new@grove.test", claims.NewEmail)
}

func TestTokenWrongType(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	raw, err := tokens.SignPasswordReset(7)
	require.NoError(t, err)

	_, err = tokens.Verify(raw, TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenWrongType)
}

func TestTokenTampering(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	raw, err := tokens.SignAccess(7)
	require.NoError(t, err)

	// Flipping a character in the signature segment invalidates the token.
	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tokens.Verify(tampered, TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewTokens("secret", "HS256", time.Hour)
	verifier := NewTokens("other-secret", "HS256", time.Hour)

	raw, err := signer.SignAccess(7)
	require.NoError(t, err)

	_, err = verifier.Verify(raw, TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpiry(t *testing.T) {
	tokens := NewTokens("secret", "HS256", -time.Minute)

	raw, err := tokens.SignAccess(7)
	require.NoError(t, err)

	_, err = tokens.Verify(raw, TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	_, err := tokens.Verify("definitely-not-a-jwt", TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenMissingClaims(t *testing.T) {
	tokens := NewTokens("secret", "HS256", time.Hour)

	raw, err := tokens.SignAccess(0)
	require.NoError(t, err)

	_, err = tokens.Verify(raw, TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenMissingClaim)
}
