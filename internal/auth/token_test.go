package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() Claims {
	return Claims{
		UserID:           "user-1",
		Name:             "Ada Admin",
		Email:            "a@acme.com",
		OrganisationID:   "org-1",
		OrganisationName: "Acme",
		IsAdmin:          true,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", 8*time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Acme", claims.OrganisationName)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, claims.IssuedAt.Add(8*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issued := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	issuer, err := NewTokenIssuer("secret", 8*time.Hour)
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return issued })

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	issuer.WithClock(func() time.Time { return issued.Add(8*time.Hour + time.Minute) })
	_, err = issuer.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(testClaims())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsUnsignedToken(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := testClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
