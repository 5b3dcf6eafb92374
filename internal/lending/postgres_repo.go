package lending

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/catalog"
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

const recordColumns = `id, borrower_id, book_id, bundle_id, status, borrowed_at, due_at, returned_at, notes`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.BorrowerID, &rec.BookID, &rec.BundleID, &rec.Status,
		&rec.BorrowedAt, &rec.DueAt, &rec.ReturnedAt, &rec.Notes,
	)
	return rec, err
}

func itemColumn(kind catalog.Kind) string {
	if kind == catalog.KindBundle {
		return "bundle_id"
	}
	return "book_id"
}

func (r *PostgresRepo) Insert(ctx context.Context, tx pgx.Tx, rec *Record) error {
	const query = `
		INSERT INTO borrow_records (borrower_id, book_id, bundle_id, status, borrowed_at, due_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return tx.QueryRow(ctx, query,
		rec.BorrowerID, rec.BookID, rec.BundleID, rec.Status,
		rec.BorrowedAt, rec.DueAt, rec.Notes,
	).Scan(&rec.ID)
}

func (r *PostgresRepo) OpenForItem(ctx context.Context, tx pgx.Tx, kind catalog.Kind, itemID string) (Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE ` + itemColumn(kind) + ` = $1 AND status IN ('ACTIVE', 'OVERDUE')
		FOR UPDATE`

	rec, err := scanRecord(tx.QueryRow(ctx, query, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNoActiveRecord
	}
	return rec, err
}

func (r *PostgresRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE id = $1
		FOR UPDATE`

	rec, err := scanRecord(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNoActiveRecord
	}
	return rec, err
}

func (r *PostgresRepo) Finish(ctx context.Context, tx pgx.Tx, id string, status RecordStatus, returnedAt *time.Time, notes string) error {
	const query = `
		UPDATE borrow_records
		SET status = $2, returned_at = $3, notes = $4
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status, returnedAt, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActiveRecord
	}
	return nil
}

func (r *PostgresRepo) MarkOverdue(ctx context.Context, tx pgx.Tx, id string) error {
	const query = `
		UPDATE borrow_records
		SET status = 'OVERDUE'
		WHERE id = $1 AND status = 'ACTIVE'`

	_, err := tx.Exec(ctx, query, id)
	return err
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, catalog.ErrNotFound
	}
	return rec, err
}

func (r *PostgresRepo) ListByBorrower(ctx context.Context, profileID string) ([]Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE borrower_id = $1
		ORDER BY borrowed_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *PostgresRepo) ListByItem(ctx context.Context, kind catalog.Kind, itemID string) ([]Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE ` + itemColumn(kind) + ` = $1
		ORDER BY borrowed_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *PostgresRepo) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE borrow_records
		SET status = 'OVERDUE'
		WHERE status = 'ACTIVE' AND due_at < $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
