package entitlement

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

func (r *PostgresRepo) GetPlan(ctx context.Context, id string) (Plan, error) {
	const query = `
		SELECT id, kind, name, description, price, duration_months, max_concurrent, is_active
		FROM plans
		WHERE id = $1`

	var p Plan
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&p.ID, &p.Kind, &p.Name, &p.Description, &p.Price,
		&p.DurationMonths, &p.MaxConcurrent, &p.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Plan{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepo) ListPlans(ctx context.Context) ([]Plan, error) {
	const query = `
		SELECT id, kind, name, description, price, duration_months, max_concurrent, is_active
		FROM plans
		WHERE is_active
		ORDER BY kind, duration_months, price`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(
			&p.ID, &p.Kind, &p.Name, &p.Description, &p.Price,
			&p.DurationMonths, &p.MaxConcurrent, &p.Active,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) LockProfile(ctx context.Context, tx pgx.Tx, profileID string) error {
	const query = `SELECT id FROM profiles WHERE id = $1 FOR UPDATE`

	var id string
	err := tx.QueryRow(ctx, query, profileID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const subscriptionColumns = `
	s.id, s.profile_id, s.start_at, s.end_at, s.status,
	fp.id, fp.kind, fp.name, fp.description, fp.price, fp.duration_months, fp.max_concurrent, fp.is_active,
	bp.id, bp.kind, bp.name, bp.description, bp.price, bp.duration_months, bp.max_concurrent, bp.is_active`

func scanSubscription(row pgx.Row) (Subscription, error) {
	var (
		s    Subscription
		free struct {
			id, kind, name, description  *string
			price                        *float64
			durationMonths, maxConcurrent *int
			active                       *bool
		}
		bundle struct {
			id, kind, name, description  *string
			price                        *float64
			durationMonths, maxConcurrent *int
			active                       *bool
		}
	)
	err := row.Scan(
		&s.ID, &s.ProfileID, &s.StartAt, &s.EndAt, &s.Status,
		&free.id, &free.kind, &free.name, &free.description, &free.price,
		&free.durationMonths, &free.maxConcurrent, &free.active,
		&bundle.id, &bundle.kind, &bundle.name, &bundle.description, &bundle.price,
		&bundle.durationMonths, &bundle.maxConcurrent, &bundle.active,
	)
	if err != nil {
		return Subscription{}, err
	}
	if free.id != nil {
		s.FreePlan = &Plan{
			ID: *free.id, Kind: PlanKind(*free.kind), Name: *free.name,
			Description: *free.description, Price: *free.price,
			DurationMonths: *free.durationMonths, MaxConcurrent: *free.maxConcurrent,
			Active: *free.active,
		}
	}
	if bundle.id != nil {
		s.BundlePlan = &Plan{
			ID: *bundle.id, Kind: PlanKind(*bundle.kind), Name: *bundle.name,
			Description: *bundle.description, Price: *bundle.price,
			DurationMonths: *bundle.durationMonths, MaxConcurrent: *bundle.maxConcurrent,
			Active: *bundle.active,
		}
	}
	return s, nil
}

func (r *PostgresRepo) ActiveSubscriptionsAt(ctx context.Context, tx pgx.Tx, profileID string, at time.Time) ([]Subscription, error) {
	const query = `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		LEFT JOIN plans fp ON fp.id = s.free_plan_id
		LEFT JOIN plans bp ON bp.id = s.bundle_plan_id
		WHERE s.profile_id = $1
		  AND s.status = 'ACTIVE'
		  AND s.start_at <= $2
		  AND s.end_at > $2
		ORDER BY s.start_at`

	rows, err := tx.Query(ctx, query, profileID, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CountOverlappingActive(ctx context.Context, tx pgx.Tx, profileID string, start, end time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM subscriptions
		WHERE profile_id = $1
		  AND status = 'ACTIVE'
		  AND start_at < $3
		  AND end_at > $2`

	var n int
	err := tx.QueryRow(ctx, query, profileID, start, end).Scan(&n)
	return n, err
}

func (r *PostgresRepo) CreateSubscription(ctx context.Context, tx pgx.Tx, sub *Subscription) error {
	const query = `
		INSERT INTO subscriptions (profile_id, free_plan_id, bundle_plan_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var freeID, bundleID *string
	if sub.FreePlan != nil {
		freeID = &sub.FreePlan.ID
	}
	if sub.BundlePlan != nil {
		bundleID = &sub.BundlePlan.ID
	}
	return tx.QueryRow(ctx, query,
		sub.ProfileID, freeID, bundleID, sub.StartAt, sub.EndAt, sub.Status,
	).Scan(&sub.ID)
}

func (r *PostgresRepo) SetSubscriptionStatus(ctx context.Context, id string, status SubscriptionStatus) error {
	const query = `UPDATE subscriptions SET status = $2 WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListSubscriptions(ctx context.Context, profileID string) ([]Subscription, error) {
	const query = `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		LEFT JOIN plans fp ON fp.id = s.free_plan_id
		LEFT JOIN plans bp ON bp.id = s.bundle_plan_id
		WHERE s.profile_id = $1
		ORDER BY s.start_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CountOpenRecords(ctx context.Context, tx pgx.Tx, profileID string, kind catalog.Kind) (int, error) {
	itemColumn := "book_id"
	if kind == catalog.KindBundle {
		itemColumn = "bundle_id"
	}
	query := `
		SELECT COUNT(*)
		FROM borrow_records
		WHERE borrower_id = $1
		  AND status IN ('ACTIVE', 'OVERDUE')
		  AND ` + itemColumn + ` IS NOT NULL`

	var n int
	err := tx.QueryRow(ctx, query, profileID).Scan(&n)
	return n, err
}
