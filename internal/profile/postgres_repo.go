package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *PostgresRepo) EnsureProfile(ctx context.Context, userID string) (Profile, error) {
	// Upsert so repeated calls for the same account are idempotent.
	const query = `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at`

	var p Profile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&p.ID, &p.UserID, &p.CreatedAt)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Profile, error) {
	const query = `
		SELECT p.id, p.user_id, u.username, p.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	var p Profile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&p.ID, &p.UserID, &p.Username, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
		SELECT p.id, p.user_id, u.username, p.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p Profile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&p.ID, &p.UserID, &p.Username, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return p, err
}
