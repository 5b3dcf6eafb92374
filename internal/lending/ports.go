package lending

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"libraryapi/internal/catalog"
)

// ItemStore is the slice of the catalog the engine needs: locked reads and
// status writes inside its own transaction. Transition legality is decided
// here, not in the catalog.
type ItemStore interface {
	GetBookForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Book, error)
	GetBundleForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Bundle, error)
	SetBookStatus(ctx context.Context, tx pgx.Tx, id string, status catalog.Status) error
	SetBundleStatus(ctx context.Context, tx pgx.Tx, id string, status catalog.Status) error
	ListMemberBooks(ctx context.Context, tx pgx.Tx, bundleID string) ([]catalog.Book, error)
	MembershipCount(ctx context.Context, tx pgx.Tx, bookID string) (int, error)
}

// LimitChecker answers whether a borrower may take one more item of a kind.
type LimitChecker interface {
	CanBorrow(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (bool, error)
}

// RecordRepository stores borrow records.
type RecordRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, rec *Record) error
	// OpenForItem locks and returns the unique Active or Overdue record for
	// the item; ErrNoActiveRecord when none exists.
	OpenForItem(ctx context.Context, tx pgx.Tx, kind catalog.Kind, itemID string) (Record, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Record, error)
	// Finish moves the record to a terminal-ish status, stamping the
	// returned time and replacing the note trail.
	Finish(ctx context.Context, tx pgx.Tx, id string, status RecordStatus, returnedAt *time.Time, notes string) error
	MarkOverdue(ctx context.Context, tx pgx.Tx, id string) error

	Get(ctx context.Context, id string) (Record, error)
	ListByBorrower(ctx context.Context, profileID string) ([]Record, error)
	ListByItem(ctx context.Context, kind catalog.Kind, itemID string) ([]Record, error)
	// SweepOverdue marks every Active record past due as Overdue in one
	// idempotent statement.
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

// TxRunner executes a function inside one atomic transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(pgx.Tx) error) error
}
