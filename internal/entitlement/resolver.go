package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"libraryapi/internal/catalog"
)

// Resolver computes a borrower's current borrowing limits from their active
// subscription. All methods run against the caller's transaction so the
// lending engine sees a consistent snapshot.
type Resolver struct {
	repo Repository
	now  func() time.Time
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo, now: time.Now}
}

// ResolveLimits returns the borrower's plan maximum for the given kind, or a
// zero limit when no subscription window covers now. Finding more than one
// in-window active subscription indicates corrupt data and fails loudly.
func (r *Resolver) ResolveLimits(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (Limits, error) {
	subs, err := r.repo.ActiveSubscriptionsAt(ctx, tx, profileID, r.now())
	if err != nil {
		return Limits{}, err
	}
	if len(subs) > 1 {
		return Limits{}, fmt.Errorf("profile %s: %w", profileID, ErrOverlappingActive)
	}
	if len(subs) == 0 {
		return Limits{}, nil
	}

	sub := subs[0]
	switch kind {
	case catalog.KindBook:
		if sub.FreePlan != nil {
			return Limits{MaxConcurrent: sub.FreePlan.MaxConcurrent, HasPlan: true}, nil
		}
	case catalog.KindBundle:
		if sub.BundlePlan != nil {
			return Limits{MaxConcurrent: sub.BundlePlan.MaxConcurrent, HasPlan: true}, nil
		}
	}
	return Limits{}, nil
}

// CountActiveBorrows counts the borrower's Active and Overdue records of the
// given kind.
func (r *Resolver) CountActiveBorrows(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (int, error) {
	return r.repo.CountOpenRecords(ctx, tx, profileID, kind)
}

// CanBorrow reports whether the borrower holds a plan for the kind and is
// under its concurrent limit. Reaching the maximum exactly blocks the next
// borrow.
func (r *Resolver) CanBorrow(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (bool, error) {
	if err := r.repo.LockProfile(ctx, tx, profileID); err != nil {
		return false, err
	}
	limits, err := r.ResolveLimits(ctx, tx, profileID, kind)
	if err != nil {
		return false, err
	}
	if !limits.HasPlan {
		return false, nil
	}
	count, err := r.CountActiveBorrows(ctx, tx, profileID, kind)
	if err != nil {
		return false, err
	}
	return count < limits.MaxConcurrent, nil
}
