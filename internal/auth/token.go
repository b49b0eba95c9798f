package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure returned by Validate. Malformed
// tokens, bad signatures, expired tokens and missing subjects all collapse
// into it so callers cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies stateless HS256 session tokens. There is no
// revocation list; rotating the secret is the only bulk revocation mechanism.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the subject with the issuer's default validity window.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	return t.IssueWithTTL(subject, t.ttl)
}

func (t *TokenIssuer) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate verifies the signature and expiry and returns the subject.
func (t *TokenIssuer) Validate(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
