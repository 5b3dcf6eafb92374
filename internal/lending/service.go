package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"libraryapi/internal/catalog"
)

// Engine executes the circulation state machine. Every transition runs as one
// transaction: the item row is locked first, then validations, the record
// write and the status write commit together or not at all.
type Engine struct {
	tx      TxRunner
	items   ItemStore
	limits  LimitChecker
	records RecordRepository
	now     func() time.Time
}

func NewEngine(tx TxRunner, items ItemStore, limits LimitChecker, records RecordRepository) *Engine {
	return &Engine{tx: tx, items: items, limits: limits, records: records, now: time.Now}
}

// resolveItem locks the item row and reports its kind. Book ids are tried
// first; an id matching neither variant is not found.
func (e *Engine) resolveItem(ctx context.Context, tx pgx.Tx, itemID string) (catalog.Kind, catalog.Book, catalog.Bundle, error) {
	book, err := e.items.GetBookForUpdate(ctx, tx, itemID)
	if err == nil {
		return catalog.KindBook, book, catalog.Bundle{}, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return "", catalog.Book{}, catalog.Bundle{}, err
	}
	bundle, err := e.items.GetBundleForUpdate(ctx, tx, itemID)
	if err != nil {
		return "", catalog.Book{}, catalog.Bundle{}, err
	}
	return catalog.KindBundle, catalog.Book{}, bundle, nil
}

// Borrow lends the item to the borrower for the fixed loan period.
func (e *Engine) Borrow(ctx context.Context, itemID, borrowerID, notes string) (Record, error) {
	var rec Record
	err := e.tx.WithTx(ctx, func(tx pgx.Tx) error {
		kind, book, bundle, err := e.resolveItem(ctx, tx, itemID)
		if err != nil {
			return err
		}

		switch kind {
		case catalog.KindBook:
			if book.Status != catalog.StatusNormal {
				return fmt.Errorf("book %s has status %s: %w", book.NLCode, book.Status.Display(), ErrNotAvailable)
			}
		case catalog.KindBundle:
			members, err := e.items.ListMemberBooks(ctx, tx, bundle.ID)
			if err != nil {
				return err
			}
			if !catalog.BundleAvailable(bundle, members) {
				return fmt.Errorf("bundle %s is not available: %w", bundle.Code, ErrNotAvailable)
			}
		}

		ok, err := e.limits.CanBorrow(ctx, tx, borrowerID, kind)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("borrower %s cannot take another %s: %w", borrowerID, kind, ErrEntitlement)
		}

		now := e.now()
		rec = Record{
			BorrowerID: borrowerID,
			Status:     RecordActive,
			BorrowedAt: now,
			DueAt:      now.Add(LoanPeriod),
			Notes:      notes,
		}
		if kind == catalog.KindBook {
			rec.BookID = &book.ID
		} else {
			rec.BundleID = &bundle.ID
		}
		if err := e.records.Insert(ctx, tx, &rec); err != nil {
			return err
		}

		if kind == catalog.KindBook {
			return e.items.SetBookStatus(ctx, tx, book.ID, catalog.StatusBorrowed)
		}
		return e.items.SetBundleStatus(ctx, tx, bundle.ID, catalog.StatusBorrowed)
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Return closes the item's circulating record and restores its status. A book
// still assigned to a bundle goes back to In Bundle, not Normal; bundle
// membership outranks loan state as the resting default.
func (e *Engine) Return(ctx context.Context, itemID, notes string) (Record, error) {
	var rec Record
	err := e.tx.WithTx(ctx, func(tx pgx.Tx) error {
		kind, book, bundle, err := e.resolveItem(ctx, tx, itemID)
		if err != nil {
			return err
		}

		rec, err = e.records.OpenForItem(ctx, tx, kind, itemID)
		if err != nil {
			return err
		}

		now := e.now()
		rec.Status = RecordReturned
		rec.ReturnedAt = &now
		rec.Notes = appendNotes(rec.Notes, "Return notes", notes)
		if err := e.records.Finish(ctx, tx, rec.ID, rec.Status, rec.ReturnedAt, rec.Notes); err != nil {
			return err
		}

		if kind == catalog.KindBook {
			restored := catalog.StatusNormal
			bundles, err := e.items.MembershipCount(ctx, tx, book.ID)
			if err != nil {
				return err
			}
			if bundles > 0 {
				restored = catalog.StatusInBundle
			}
			return e.items.SetBookStatus(ctx, tx, book.ID, restored)
		}
		return e.items.SetBundleStatus(ctx, tx, bundle.ID, catalog.StatusNormal)
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// MarkLost records the item as lost. Allowed from Normal or Borrowed; a
// circulating record, if any, transitions to Lost and is returned.
func (e *Engine) MarkLost(ctx context.Context, itemID string) (*Record, error) {
	var lost *Record
	err := e.tx.WithTx(ctx, func(tx pgx.Tx) error {
		kind, book, bundle, err := e.resolveItem(ctx, tx, itemID)
		if err != nil {
			return err
		}

		status := book.Status
		if kind == catalog.KindBundle {
			status = bundle.Status
		}
		if status != catalog.StatusNormal && status != catalog.StatusBorrowed {
			return fmt.Errorf("cannot mark item lost with status %s: %w", status.Display(), catalog.ErrConflict)
		}

		rec, err := e.records.OpenForItem(ctx, tx, kind, itemID)
		switch {
		case err == nil:
			rec.Status = RecordLost
			if err := e.records.Finish(ctx, tx, rec.ID, RecordLost, nil, rec.Notes); err != nil {
				return err
			}
			lost = &rec
		case !errors.Is(err, ErrNoActiveRecord):
			return err
		}

		if kind == catalog.KindBook {
			return e.items.SetBookStatus(ctx, tx, book.ID, catalog.StatusLost)
		}
		return e.items.SetBundleStatus(ctx, tx, bundle.ID, catalog.StatusLost)
	})
	if err != nil {
		return nil, err
	}
	return lost, nil
}

// WriteOff retires a book from the catalog. Books only, and only from the
// Normal baseline, so nothing currently lent or terminal can be written off.
func (e *Engine) WriteOff(ctx context.Context, itemID string) error {
	return e.tx.WithTx(ctx, func(tx pgx.Tx) error {
		book, err := e.items.GetBookForUpdate(ctx, tx, itemID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				if _, berr := e.items.GetBundleForUpdate(ctx, tx, itemID); berr == nil {
					return fmt.Errorf("write-off applies to books only: %w", catalog.ErrConflict)
				}
			}
			return err
		}
		if book.Status != catalog.StatusNormal {
			return fmt.Errorf("cannot write off book with status %s: %w", book.Status.Display(), catalog.ErrConflict)
		}
		return e.items.SetBookStatus(ctx, tx, book.ID, catalog.StatusWrittenOff)
	})
}

// GetRecord returns record detail, materializing a lapsed due date first so
// callers never see a stale Active status past due.
func (e *Engine) GetRecord(ctx context.Context, id string) (Record, error) {
	rec, err := e.records.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if _, err := rec.Kind(); err != nil {
		return Record{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}
	if !rec.OverdueAt(e.now()) {
		return rec, nil
	}

	err = e.tx.WithTx(ctx, func(tx pgx.Tx) error {
		locked, err := e.records.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		rec = locked
		if !locked.OverdueAt(e.now()) {
			return nil
		}
		if err := e.records.MarkOverdue(ctx, tx, id); err != nil {
			return err
		}
		rec.Status = RecordOverdue
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (e *Engine) ListBorrowerRecords(ctx context.Context, profileID string) ([]Record, error) {
	return e.records.ListByBorrower(ctx, profileID)
}

func (e *Engine) ListItemRecords(ctx context.Context, kind catalog.Kind, itemID string) ([]Record, error) {
	return e.records.ListByItem(ctx, kind, itemID)
}

// SweepOverdue bulk-materializes overdue status for every lapsed Active
// record. Idempotent, one statement, no long-lived locks.
func (e *Engine) SweepOverdue(ctx context.Context) (int64, error) {
	return e.records.SweepOverdue(ctx, e.now())
}
