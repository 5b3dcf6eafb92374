package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTxConflict is returned when a transaction keeps losing lock or
// serialization races after the retry budget is spent. Callers surface it as
// a transient conflict; it never indicates a business-rule violation.
var ErrTxConflict = errors.New("transaction conflict")

const defaultMaxAttempts = 3

// Runner executes a function inside a read-committed transaction, retrying a
// bounded number of times when Postgres reports a retryable conflict. Either
// the whole function commits or none of it does.
type Runner struct {
	db          *pgxpool.Pool
	maxAttempts int
}

func NewRunner(db *pgxpool.Pool) *Runner {
	return &Runner{db: db, maxAttempts: defaultMaxAttempts}
}

func (r *Runner) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt >= r.maxAttempts {
			break
		}
		log.Printf("tx retry attempt=%d error=%v", attempt, err)
	}
	return fmt.Errorf("%w: %v", ErrTxConflict, err)
}

func (r *Runner) runOnce(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return true
	}
	return false
}
