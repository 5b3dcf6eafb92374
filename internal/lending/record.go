package lending

import (
	"errors"
	"time"

	"libraryapi/internal/catalog"
)

// ErrNotAvailable is returned when the item's status precludes borrowing.
var ErrNotAvailable = errors.New("item not available for borrowing")

// ErrEntitlement is returned when the borrower has no plan for the item kind
// or is at their concurrent-borrow limit.
var ErrEntitlement = errors.New("borrower entitlement check failed")

// ErrNoActiveRecord is returned when a return targets an item with no
// circulating record.
var ErrNoActiveRecord = errors.New("no active borrow record for item")

// ErrInvariant signals corrupt data, e.g. a record referencing both a book
// and a bundle. Logged and surfaced as an internal error.
var ErrInvariant = errors.New("borrow record invariant violation")

// LoanPeriod is the fixed loan term; due date is always borrow time plus this.
const LoanPeriod = 30 * 24 * time.Hour

// RecordStatus is the lifecycle state of a borrow record.
//
// Active -> Returned | Overdue | Lost; Overdue -> Returned | Lost.
// Returned and Lost are terminal. Overdue is derived: an Active record past
// its due date is overdue, and every path that observes this persists it.
type RecordStatus string

const (
	RecordActive   RecordStatus = "ACTIVE"
	RecordReturned RecordStatus = "RETURNED"
	RecordOverdue  RecordStatus = "OVERDUE"
	RecordLost     RecordStatus = "LOST"
)

var recordStatusDisplay = map[RecordStatus]string{
	RecordActive:   "Active",
	RecordReturned: "Returned",
	RecordOverdue:  "Overdue",
	RecordLost:     "Lost",
}

func (s RecordStatus) Display() string {
	if d, ok := recordStatusDisplay[s]; ok {
		return d
	}
	return string(s)
}

// Open reports whether the record still counts against the borrower's limit.
func (s RecordStatus) Open() bool {
	return s == RecordActive || s == RecordOverdue
}

// Record is one lending transaction. Exactly one of BookID and BundleID is
// set; history is append-only and records are never deleted.
type Record struct {
	ID         string       `json:"id"`
	BorrowerID string       `json:"borrower_id"`
	BookID     *string      `json:"book_id,omitempty"`
	BundleID   *string      `json:"bundle_id,omitempty"`
	Status     RecordStatus `json:"status"`
	BorrowedAt time.Time    `json:"borrowed_at"`
	DueAt      time.Time    `json:"due_at"`
	ReturnedAt *time.Time   `json:"returned_at,omitempty"`
	Notes      string       `json:"notes,omitempty"`
}

// Kind resolves the record's item variant, failing on a corrupt row.
func (r Record) Kind() (catalog.Kind, error) {
	switch {
	case r.BookID != nil && r.BundleID == nil:
		return catalog.KindBook, nil
	case r.BundleID != nil && r.BookID == nil:
		return catalog.KindBundle, nil
	}
	return "", ErrInvariant
}

// OverdueAt reports whether the record is conceptually overdue at the given
// instant even if the stored status has not been materialized yet.
func (r Record) OverdueAt(at time.Time) bool {
	return r.Status == RecordActive && at.After(r.DueAt)
}

// appendNotes concatenates return notes onto the existing note trail; prior
// notes are never overwritten.
func appendNotes(existing, label, extra string) string {
	if extra == "" {
		return existing
	}
	entry := label + ": " + extra
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}
