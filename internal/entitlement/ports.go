package entitlement

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"libraryapi/internal/catalog"
)

// Repository defines plan and subscription storage. Transactional methods
// take a pgx.Tx so limit checks run inside the same transaction as the
// borrow that depends on them.
type Repository interface {
	GetPlan(ctx context.Context, id string) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)

	// LockProfile takes a row lock on the borrower's profile, serializing
	// concurrent limit checks for the same borrower. Missing profile
	// reports ErrNotFound.
	LockProfile(ctx context.Context, tx pgx.Tx, profileID string) error

	// ActiveSubscriptionsAt returns every Active subscription whose window
	// covers the given instant, plans joined in.
	ActiveSubscriptionsAt(ctx context.Context, tx pgx.Tx, profileID string, at time.Time) ([]Subscription, error)

	// CountOverlappingActive counts Active subscriptions intersecting the
	// [start, end) window.
	CountOverlappingActive(ctx context.Context, tx pgx.Tx, profileID string, start, end time.Time) (int, error)

	CreateSubscription(ctx context.Context, tx pgx.Tx, sub *Subscription) error
	SetSubscriptionStatus(ctx context.Context, id string, status SubscriptionStatus) error
	ListSubscriptions(ctx context.Context, profileID string) ([]Subscription, error)

	// CountOpenRecords counts the borrower's records with status Active or
	// Overdue for the given item kind.
	CountOpenRecords(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (int, error)
}

// TxRunner executes a function inside one atomic transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(pgx.Tx) error) error
}
