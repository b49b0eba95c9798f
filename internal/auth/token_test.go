package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 30*time.Minute)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestValidateFailures(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 30*time.Minute)

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.IssueWithTTL("user@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := issuer.Validate("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)

		_, err = issuer.Validate("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("signature from a different secret", func(t *testing.T) {
		other := NewTokenIssuer("another-secret-another-secret-xx", 30*time.Minute)
		token, err := other.Issue("user@example.com")
		require.NoError(t, err)

		_, err = issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned algorithm rejected", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestFailuresAreIndistinguishable(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 30*time.Minute)
	expired, err := issuer.IssueWithTTL("user@example.com", -time.Minute)
	require.NoError(t, err)

	_, errExpired := issuer.Validate(expired)
	_, errMalformed := issuer.Validate("garbage")

	assert.Equal(t, errExpired, errMalformed)
}
