package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines catalog storage.
//
// The transactional methods take a pgx.Tx so the lending engine and the
// bundle membership manager can fold status writes into their own
// transactions; status transition legality is validated by those callers,
// not here.
type Repository interface {
	CreateBookProfile(ctx context.Context, p *BookProfile) error
	GetBookProfile(ctx context.Context, id string) (BookProfile, error)
	ListBookProfiles(ctx context.Context) ([]BookProfile, error)

	CreateBook(ctx context.Context, b *Book) error
	GetBook(ctx context.Context, id string) (Book, error)
	GetBookDetail(ctx context.Context, id string) (BookDetail, error)
	ListBooks(ctx context.Context) ([]Book, error)
	// DeleteBook removes a copy only while its status is the Normal
	// baseline; anything else reports ErrConflict.
	DeleteBook(ctx context.Context, id string) error

	CreateBundle(ctx context.Context, b *Bundle) error
	GetBundle(ctx context.Context, id string) (Bundle, error)
	GetBundleDetail(ctx context.Context, id string) (BundleDetail, error)
	ListBundles(ctx context.Context) ([]Bundle, error)
	DeleteBundle(ctx context.Context, id string) error

	GetBookForUpdate(ctx context.Context, tx pgx.Tx, id string) (Book, error)
	GetBundleForUpdate(ctx context.Context, tx pgx.Tx, id string) (Bundle, error)
	SetBookStatus(ctx context.Context, tx pgx.Tx, id string, status Status) error
	SetBundleStatus(ctx context.Context, tx pgx.Tx, id string, status Status) error
	ListMemberBooks(ctx context.Context, tx pgx.Tx, bundleID string) ([]Book, error)
	// MembershipCount reports how many bundles a book currently belongs to.
	MembershipCount(ctx context.Context, tx pgx.Tx, bookID string) (int, error)
}
