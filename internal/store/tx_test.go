package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	pgErr := func(code string) error {
		return &pgconn.PgError{Code: code}
	}

	t.Run("conflict codes retry", func(t *testing.T) {
		assert.True(t, retryable(pgErr(pgerrcode.SerializationFailure)))
		assert.True(t, retryable(pgErr(pgerrcode.DeadlockDetected)))
		assert.True(t, retryable(pgErr(pgerrcode.LockNotAvailable)))
	})

	t.Run("wrapped conflict codes retry", func(t *testing.T) {
		err := fmt.Errorf("borrow: %w", pgErr(pgerrcode.DeadlockDetected))
		assert.True(t, retryable(err))
	})

	t.Run("other pg errors do not", func(t *testing.T) {
		assert.False(t, retryable(pgErr(pgerrcode.UniqueViolation)))
		assert.False(t, retryable(pgErr(pgerrcode.ForeignKeyViolation)))
	})

	t.Run("plain errors do not", func(t *testing.T) {
		assert.False(t, retryable(errors.New("boom")))
		assert.False(t, retryable(nil))
	})
}
