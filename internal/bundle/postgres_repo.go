package bundle

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// PostgresRepo owns the bundle_books join rows. Both methods run inside the
// manager's transaction.
type PostgresRepo struct{}

func NewPostgresRepo() *PostgresRepo {
	return &PostgresRepo{}
}

func (r *PostgresRepo) AddMembers(ctx context.Context, tx pgx.Tx, bundleID string, bookIDs []string) error {
	const query = `
		INSERT INTO bundle_books (bundle_id, book_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`

	_, err := tx.Exec(ctx, query, bundleID, bookIDs)
	return err
}

func (r *PostgresRepo) RemoveMembers(ctx context.Context, tx pgx.Tx, bundleID string, bookIDs []string) ([]string, error) {
	const query = `
		DELETE FROM bundle_books
		WHERE bundle_id = $1 AND book_id = ANY($2::uuid[])
		RETURNING book_id`

	rows, err := tx.Query(ctx, query, bundleID, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var removed []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		removed = append(removed, id)
	}
	return removed, rows.Err()
}
