package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestHandleNotFound(t *testing.T) {
	t.Run("converts ErrNoRows to nil result", func(t *testing.T) {
		v := 42
		result, err := HandleNotFound(&v, sql.ErrNoRows)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("passes through other errors", func(t *testing.T) {
		v := 42
		dbErr := errors.New("connection refused")
		result, err := HandleNotFound(&v, dbErr)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, result)
	})

	t.Run("returns result on success", func(t *testing.T) {
		v := 42
		result, err := HandleNotFound(&v, nil)
		assert.NoError(t, err)
		assert.Equal(t, 42, *result)
	})
}

func TestUniqueViolation(t *testing.T) {
	t.Run("detects pq unique violation with constraint name", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "users_email_key"}
		constraint, ok := UniqueViolation(err)
		assert.True(t, ok)
		assert.Equal(t, "users_email_key", constraint)
	})

	t.Run("detects wrapped pq errors", func(t *testing.T) {
		inner := &pq.Error{Code: "23505", Constraint: "users_mobile_number_key"}
		wrapped := errors.Join(errors.New("insert user"), inner)
		constraint, ok := UniqueViolation(wrapped)
		assert.True(t, ok)
		assert.Equal(t, "users_mobile_number_key", constraint)
	})

	t.Run("ignores other pq error codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503"}
		_, ok := UniqueViolation(err)
		assert.False(t, ok)
	})

	t.Run("ignores non-pq errors", func(t *testing.T) {
		_, ok := UniqueViolation(errors.New("plain"))
		assert.False(t, ok)
	})
}
