package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error returns formatted string", func(t *testing.T) {
		err := New(ErrCodeNotFound, "User not found")
		assert.Equal(t, "NOT_FOUND: User not found", err.Error())
	})

	t.Run("Error with cause includes cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := Wrap(ErrCodeDatabase, "Database error", cause)
		assert.Contains(t, err.Error(), "DATABASE_ERROR")
		assert.Contains(t, err.Error(), "Database error")
		assert.Contains(t, err.Error(), "database connection failed")
	})

	t.Run("WithCause adds cause to error", func(t *testing.T) {
		cause := errors.New("original error")
		err := New(ErrCodeInternal, "Something went wrong").WithCause(cause)
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedCode ErrorCode
	}{
		{"Unauthenticated", func() *AppError { return Unauthenticated("test") }, ErrCodeUnauthenticated},
		{"BadCredentials", func() *AppError { return BadCredentials() }, ErrCodeBadCredentials},
		{"Conflict", func() *AppError { return Conflict("Email already registered") }, ErrCodeConflict},
		{"InvalidInput", func() *AppError { return InvalidInput("email", "invalid") }, ErrCodeInvalidInput},
		{"MissingRequired", func() *AppError { return MissingRequired("email") }, ErrCodeMissingRequired},
		{"NotFound", func() *AppError { return NotFound("User") }, ErrCodeNotFound},
		{"UpstreamAuth", func() *AppError { return UpstreamAuth(errors.New("401")) }, ErrCodeUpstreamAuth},
		{"UpstreamRequest", func() *AppError { return UpstreamRequest("bad request") }, ErrCodeUpstreamRequest},
		{"Internal", func() *AppError { return Internal("test") }, ErrCodeInternal},
		{"Database", func() *AppError { return Database(errors.New("down")) }, ErrCodeDatabase},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.constructor()
			assert.Equal(t, tc.expectedCode, err.Code)
		})
	}
}

func TestBadCredentialsMessage(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	assert.Equal(t, BadCredentials().Message, BadCredentials().Message)
	assert.Equal(t, "Incorrect credentials", BadCredentials().Message)
}

func TestErrorInspection(t *testing.T) {
	t.Run("IsAppError identifies AppError", func(t *testing.T) {
		assert.True(t, IsAppError(Conflict("duplicate")))
		assert.False(t, IsAppError(errors.New("plain")))
	})

	t.Run("AsAppError unwraps nested AppError", func(t *testing.T) {
		inner := BadCredentials()
		appErr, ok := AsAppError(inner)
		assert.True(t, ok)
		assert.Equal(t, ErrCodeBadCredentials, appErr.Code)
	})

	t.Run("GetCode falls back to internal", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, GetCode(errors.New("plain")))
		assert.Equal(t, ErrCodeConflict, GetCode(Conflict("dup")))
	})
}
