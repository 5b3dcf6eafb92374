package catalog

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a referenced catalog item does not exist.
var ErrNotFound = errors.New("catalog item not found")

// ErrConflict is returned when the item's current state blocks the request,
// e.g. deleting a borrowed book or reusing a catalog code.
var ErrConflict = errors.New("catalog state conflict")

// Status is the circulation status of a book or bundle.
type Status string

const (
	StatusNormal     Status = "NORMAL"
	StatusBorrowed   Status = "BORROWED"
	StatusBooked     Status = "BOOKED"
	StatusWrittenOff Status = "WRITTEN_OFF"
	StatusInBundle   Status = "IN_BUNDLE"
	StatusLost       Status = "LOST"
	StatusPreparing  Status = "PREPARING"
)

var statusDisplay = map[Status]string{
	StatusNormal:     "Normal",
	StatusBorrowed:   "Borrowed",
	StatusBooked:     "Booked",
	StatusWrittenOff: "Written Off",
	StatusInBundle:   "In Bundle",
	StatusLost:       "Lost",
	StatusPreparing:  "Preparing",
}

// Display returns the human-readable form of a status.
func (s Status) Display() string {
	if d, ok := statusDisplay[s]; ok {
		return d
	}
	return string(s)
}

// ValidBundleStatuses is the subset of statuses a bundle may carry.
var ValidBundleStatuses = map[Status]bool{
	StatusNormal:    true,
	StatusBorrowed:  true,
	StatusPreparing: true,
	StatusLost:      true,
}

// Kind distinguishes the two lendable item variants.
type Kind string

const (
	KindBook   Kind = "BOOK"
	KindBundle Kind = "BUNDLE"
)

// BookProfile is the shared metadata record behind one or more physical copies.
type BookProfile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Series      string    `json:"series,omitempty"`
	CopiesCount int       `json:"copies_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Book is a single physical copy identified by its NL catalog code.
type Book struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	NLCode    string    `json:"nl_code"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bundle is a lendable set of books.
type Bundle struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Borrower is the read-model view of who currently holds an item.
type Borrower struct {
	ProfileID string    `json:"profile_id"`
	Username  string    `json:"username"`
	DueAt     time.Time `json:"due_at"`
}

// BookDetail is the presentation view of a copy.
type BookDetail struct {
	Book
	StatusDisplay   string       `json:"status_display"`
	Profile         *BookProfile `json:"profile,omitempty"`
	CurrentBorrower *Borrower    `json:"current_borrower,omitempty"`
}

// BundleDetail is the presentation view of a bundle.
type BundleDetail struct {
	Bundle
	StatusDisplay   string    `json:"status_display"`
	Books           []Book    `json:"books"`
	Available       bool      `json:"available"`
	CurrentBorrower *Borrower `json:"current_borrower,omitempty"`
}

// NormalizeBundleCode uppercases a bundle code before write, so "a12" and
// "A12" collide on the unique index.
func NormalizeBundleCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// BundleAvailable reports whether a bundle may be borrowed: its own status is
// Normal, it has at least one member, and no member is individually
// circulating elsewhere.
func BundleAvailable(b Bundle, members []Book) bool {
	if b.Status != StatusNormal || len(members) == 0 {
		return false
	}
	for _, m := range members {
		if m.Status != StatusInBundle {
			return false
		}
	}
	return true
}
