package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Book profiles

func (r *PostgresRepo) CreateBookProfile(ctx context.Context, p *BookProfile) error {
	const query = `
		INSERT INTO book_profiles (name, isbn, description, author, series)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		p.Name, p.ISBN, p.Description, p.Author, p.Series,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("isbn %s already registered: %w", p.ISBN, ErrConflict)
	}
	return err
}

func (r *PostgresRepo) GetBookProfile(ctx context.Context, id string) (BookProfile, error) {
	const query = `
		SELECT p.id, p.name, p.isbn, p.description, p.author, p.series,
		       (SELECT COUNT(*) FROM books b WHERE b.profile_id = p.id),
		       p.created_at, p.updated_at
		FROM book_profiles p
		WHERE p.id = $1`

	var p BookProfile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&p.ID, &p.Name, &p.ISBN, &p.Description, &p.Author, &p.Series,
		&p.CopiesCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return BookProfile{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepo) ListBookProfiles(ctx context.Context) ([]BookProfile, error) {
	const query = `
		SELECT p.id, p.name, p.isbn, p.description, p.author, p.series,
		       (SELECT COUNT(*) FROM books b WHERE b.profile_id = p.id),
		       p.created_at, p.updated_at
		FROM book_profiles p
		ORDER BY p.name`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookProfile
	for rows.Next() {
		var p BookProfile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ISBN, &p.Description, &p.Author, &p.Series,
			&p.CopiesCount, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Books

func (r *PostgresRepo) CreateBook(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (profile_id, nl_code, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	if b.Status == "" {
		b.Status = StatusNormal
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, b.ProfileID, b.NLCode, b.Status).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("nl code %s already in use: %w", b.NLCode, ErrConflict)
	}
	return err
}

func (r *PostgresRepo) GetBook(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, profile_id, nl_code, status, created_at, updated_at
		FROM books
		WHERE id = $1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.ProfileID, &b.NLCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) GetBookDetail(ctx context.Context, id string) (BookDetail, error) {
	book, err := r.GetBook(ctx, id)
	if err != nil {
		return BookDetail{}, err
	}
	detail := BookDetail{Book: book, StatusDisplay: book.Status.Display()}

	profile, err := r.GetBookProfile(ctx, book.ProfileID)
	if err == nil {
		detail.Profile = &profile
	} else if !errors.Is(err, ErrNotFound) {
		return BookDetail{}, err
	}

	borrower, err := r.currentBorrower(ctx, "book_id", id)
	if err != nil {
		return BookDetail{}, err
	}
	detail.CurrentBorrower = borrower
	return detail, nil
}

func (r *PostgresRepo) ListBooks(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, profile_id, nl_code, status, created_at, updated_at
		FROM books
		ORDER BY nl_code`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) DeleteBook(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1 AND status = 'NORMAL'`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		book, err := r.GetBook(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("cannot delete book with status %s: %w", book.Status.Display(), ErrConflict)
	}
	return nil
}

// Bundles

func (r *PostgresRepo) CreateBundle(ctx context.Context, b *Bundle) error {
	const query = `
		INSERT INTO bundles (code, name, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	b.Code = NormalizeBundleCode(b.Code)
	if b.Status == "" {
		b.Status = StatusNormal
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, b.Code, b.Name, b.Description, b.Status).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("bundle code %s already in use: %w", b.Code, ErrConflict)
	}
	return err
}

func (r *PostgresRepo) GetBundle(ctx context.Context, id string) (Bundle, error) {
	const query = `
		SELECT id, code, name, description, status, created_at, updated_at
		FROM bundles
		WHERE id = $1`

	var b Bundle
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Code, &b.Name, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bundle{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) GetBundleDetail(ctx context.Context, id string) (BundleDetail, error) {
	bundle, err := r.GetBundle(ctx, id)
	if err != nil {
		return BundleDetail{}, err
	}

	const query = `
		SELECT b.id, b.profile_id, b.nl_code, b.status, b.created_at, b.updated_at
		FROM books b
		JOIN bundle_books bb ON bb.book_id = b.id
		WHERE bb.bundle_id = $1
		ORDER BY b.nl_code`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, id)
	if err != nil {
		return BundleDetail{}, err
	}
	defer rows.Close()
	members, err := scanBooks(rows)
	if err != nil {
		return BundleDetail{}, err
	}

	borrower, err := r.currentBorrower(ctx, "bundle_id", id)
	if err != nil {
		return BundleDetail{}, err
	}

	return BundleDetail{
		Bundle:          bundle,
		StatusDisplay:   bundle.Status.Display(),
		Books:           members,
		Available:       BundleAvailable(bundle, members),
		CurrentBorrower: borrower,
	}, nil
}

func (r *PostgresRepo) ListBundles(ctx context.Context) ([]Bundle, error) {
	const query = `
		SELECT id, code, name, description, status, created_at, updated_at
		FROM bundles
		ORDER BY code`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bundle
	for rows.Next() {
		var b Bundle
		if err := rows.Scan(
			&b.ID, &b.Code, &b.Name, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) DeleteBundle(ctx context.Context, id string) error {
	const query = `DELETE FROM bundles WHERE id = $1 AND status = 'NORMAL'`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		bundle, err := r.GetBundle(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("cannot delete bundle with status %s: %w", bundle.Status.Display(), ErrConflict)
	}
	return nil
}

// Transactional status store

func (r *PostgresRepo) GetBookForUpdate(ctx context.Context, tx pgx.Tx, id string) (Book, error) {
	const query = `
		SELECT id, profile_id, nl_code, status, created_at, updated_at
		FROM books
		WHERE id = $1
		FOR UPDATE`

	var b Book
	err := tx.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.ProfileID, &b.NLCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) GetBundleForUpdate(ctx context.Context, tx pgx.Tx, id string) (Bundle, error) {
	const query = `
		SELECT id, code, name, description, status, created_at, updated_at
		FROM bundles
		WHERE id = $1
		FOR UPDATE`

	var b Bundle
	err := tx.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Code, &b.Name, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bundle{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) SetBookStatus(ctx context.Context, tx pgx.Tx, id string, status Status) error {
	const query = `UPDATE books SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) SetBundleStatus(ctx context.Context, tx pgx.Tx, id string, status Status) error {
	const query = `UPDATE bundles SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListMemberBooks(ctx context.Context, tx pgx.Tx, bundleID string) ([]Book, error) {
	const query = `
		SELECT b.id, b.profile_id, b.nl_code, b.status, b.created_at, b.updated_at
		FROM books b
		JOIN bundle_books bb ON bb.book_id = b.id
		WHERE bb.bundle_id = $1
		ORDER BY b.nl_code
		FOR UPDATE OF b`

	rows, err := tx.Query(ctx, query, bundleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) MembershipCount(ctx context.Context, tx pgx.Tx, bookID string) (int, error) {
	const query = `SELECT COUNT(*) FROM bundle_books WHERE book_id = $1`

	var n int
	err := tx.QueryRow(ctx, query, bookID).Scan(&n)
	return n, err
}

func (r *PostgresRepo) currentBorrower(ctx context.Context, itemColumn, itemID string) (*Borrower, error) {
	// itemColumn is one of the two fixed record columns, never user input.
	query := fmt.Sprintf(`
		SELECT p.id, u.username, br.due_at
		FROM borrow_records br
		JOIN profiles p ON p.id = br.borrower_id
		JOIN users u ON u.id = p.user_id
		WHERE br.%s = $1 AND br.status IN ('ACTIVE', 'OVERDUE')
		LIMIT 1`, itemColumn)

	var b Borrower
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, itemID).Scan(&b.ProfileID, &b.Username, &b.DueAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.ProfileID, &b.NLCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
