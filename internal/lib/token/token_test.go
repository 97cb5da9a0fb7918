package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	signer := NewSigner("secret", "activity-api", time.Hour)

	tok, err := signer.Sign(7, "budi", "mahasiswa")
	require.NoError(t, err)

	claims, err := signer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "mahasiswa", claims.Role)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "activity-api", claims.Issuer)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestParse_Expired(t *testing.T) {
	signer := NewSigner("secret", "activity-api", time.Hour)
	signer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := signer.Sign(1, "admin", "admin")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Parse(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := NewSigner("one", "activity-api", time.Hour).Sign(1, "a", "admin")
	require.NoError(t, err)

	_, err = NewSigner("two", "activity-api", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsNonHMAC(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSigner("secret", "activity-api", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewSigner("secret", "activity-api", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
