package bundle

import (
	"context"

	"github.com/jackc/pgx/v5"

	"libraryapi/internal/catalog"
)

// ItemStore is the slice of the catalog the manager needs inside its
// transactions.
type ItemStore interface {
	GetBookForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Book, error)
	GetBundleForUpdate(ctx context.Context, tx pgx.Tx, id string) (catalog.Bundle, error)
	SetBookStatus(ctx context.Context, tx pgx.Tx, id string, status catalog.Status) error
	ListMemberBooks(ctx context.Context, tx pgx.Tx, bundleID string) ([]catalog.Book, error)
	MembershipCount(ctx context.Context, tx pgx.Tx, bookID string) (int, error)
}

// MembershipRepo mutates the bundle-book join rows. RemoveMembers reports the
// book ids it actually deleted; ids that were never members come back absent.
type MembershipRepo interface {
	AddMembers(ctx context.Context, tx pgx.Tx, bundleID string, bookIDs []string) error
	RemoveMembers(ctx context.Context, tx pgx.Tx, bundleID string, bookIDs []string) ([]string, error)
}

// TxRunner executes a function inside one atomic transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(pgx.Tx) error) error
}

// Result reports what a membership change did.
type Result struct {
	Added   []catalog.Book `json:"added"`
	Skipped []catalog.Book `json:"skipped,omitempty"`
	Removed []string       `json:"removed,omitempty"`
}

// Manager keeps per-book status consistent with bundle membership. Membership
// changes and the status writes they imply commit in the same transaction,
// wherever the change originates.
type Manager struct {
	tx      TxRunner
	items   ItemStore
	members MembershipRepo
}

func NewManager(tx TxRunner, items ItemStore, members MembershipRepo) *Manager {
	return &Manager{tx: tx, items: items, members: members}
}

// AddBooks assigns books to the bundle. Books that are borrowed or written
// off are skipped rather than silently captured; every added book moves to
// In Bundle.
func (m *Manager) AddBooks(ctx context.Context, bundleID string, bookIDs []string) (Result, error) {
	var res Result
	err := m.tx.WithTx(ctx, func(tx pgx.Tx) error {
		res = Result{}
		if _, err := m.items.GetBundleForUpdate(ctx, tx, bundleID); err != nil {
			return err
		}

		var addIDs []string
		for _, id := range bookIDs {
			book, err := m.items.GetBookForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}
			if book.Status == catalog.StatusBorrowed || book.Status == catalog.StatusWrittenOff {
				res.Skipped = append(res.Skipped, book)
				continue
			}
			res.Added = append(res.Added, book)
			addIDs = append(addIDs, book.ID)
		}
		if len(addIDs) == 0 {
			return nil
		}

		if err := m.members.AddMembers(ctx, tx, bundleID, addIDs); err != nil {
			return err
		}
		for i, id := range addIDs {
			if err := m.items.SetBookStatus(ctx, tx, id, catalog.StatusInBundle); err != nil {
				return err
			}
			res.Added[i].Status = catalog.StatusInBundle
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// RemoveBooks drops books from the bundle. A removed book belonging to no
// other bundle resets to Normal; one still bundled elsewhere stays In Bundle.
// Only books that were actually members are touched: the status reset never
// applies to an id that merely appeared in the request.
func (m *Manager) RemoveBooks(ctx context.Context, bundleID string, bookIDs []string) (Result, error) {
	var res Result
	err := m.tx.WithTx(ctx, func(tx pgx.Tx) error {
		res = Result{}
		if _, err := m.items.GetBundleForUpdate(ctx, tx, bundleID); err != nil {
			return err
		}

		for _, id := range bookIDs {
			if _, err := m.items.GetBookForUpdate(ctx, tx, id); err != nil {
				return err
			}
		}
		removed, err := m.members.RemoveMembers(ctx, tx, bundleID, bookIDs)
		if err != nil {
			return err
		}
		res.Removed = removed
		return m.resetUnbundled(ctx, tx, removed)
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Clear empties the bundle, applying the same per-book reset rule as removal.
func (m *Manager) Clear(ctx context.Context, bundleID string) (Result, error) {
	var res Result
	err := m.tx.WithTx(ctx, func(tx pgx.Tx) error {
		res = Result{}
		if _, err := m.items.GetBundleForUpdate(ctx, tx, bundleID); err != nil {
			return err
		}
		members, err := m.items.ListMemberBooks(ctx, tx, bundleID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}

		ids := make([]string, len(members))
		for i, b := range members {
			ids[i] = b.ID
		}
		removed, err := m.members.RemoveMembers(ctx, tx, bundleID, ids)
		if err != nil {
			return err
		}
		res.Removed = removed
		return m.resetUnbundled(ctx, tx, removed)
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (m *Manager) resetUnbundled(ctx context.Context, tx pgx.Tx, bookIDs []string) error {
	for _, id := range bookIDs {
		remaining, err := m.items.MembershipCount(ctx, tx, id)
		if err != nil {
			return err
		}
		if remaining > 0 {
			continue
		}
		if err := m.items.SetBookStatus(ctx, tx, id, catalog.StatusNormal); err != nil {
			return err
		}
	}
	return nil
}
