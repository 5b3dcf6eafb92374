package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Service manages plans and subscriptions.
type Service struct {
	repo Repository
	tx   TxRunner
	now  func() time.Time
}

func NewService(repo Repository, tx TxRunner) *Service {
	return &Service{repo: repo, tx: tx, now: time.Now}
}

func (s *Service) ListPlans(ctx context.Context) ([]Plan, error) {
	return s.repo.ListPlans(ctx)
}

func (s *Service) ListSubscriptions(ctx context.Context, profileID string) ([]Subscription, error) {
	return s.repo.ListSubscriptions(ctx, profileID)
}

// Subscribe creates a subscription for the borrower. When no end is given,
// the window runs for the longest duration among the selected plans. A window
// overlapping any existing active subscription is rejected; the check and the
// insert share one transaction with the profile row locked.
func (s *Service) Subscribe(ctx context.Context, profileID string, freePlanID, bundlePlanID string, startAt, endAt time.Time) (Subscription, error) {
	if freePlanID == "" && bundlePlanID == "" {
		return Subscription{}, ErrNoPlanSelected
	}

	sub := Subscription{
		ProfileID: profileID,
		StartAt:   startAt,
		EndAt:     endAt,
		Status:    SubscriptionActive,
	}
	if sub.StartAt.IsZero() {
		sub.StartAt = s.now()
	}

	months := 0
	if freePlanID != "" {
		plan, err := s.repo.GetPlan(ctx, freePlanID)
		if err != nil {
			return Subscription{}, err
		}
		if plan.Kind != PlanFree {
			return Subscription{}, fmt.Errorf("plan %s is not a free borrowing plan: %w", freePlanID, ErrNotFound)
		}
		sub.FreePlan = &plan
		if plan.DurationMonths > months {
			months = plan.DurationMonths
		}
	}
	if bundlePlanID != "" {
		plan, err := s.repo.GetPlan(ctx, bundlePlanID)
		if err != nil {
			return Subscription{}, err
		}
		if plan.Kind != PlanBundle {
			return Subscription{}, fmt.Errorf("plan %s is not a bundle borrowing plan: %w", bundlePlanID, ErrNotFound)
		}
		sub.BundlePlan = &plan
		if plan.DurationMonths > months {
			months = plan.DurationMonths
		}
	}
	if sub.EndAt.IsZero() {
		sub.EndAt = sub.StartAt.AddDate(0, months, 0)
	}

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.LockProfile(ctx, tx, profileID); err != nil {
			return err
		}
		overlapping, err := s.repo.CountOverlappingActive(ctx, tx, profileID, sub.StartAt, sub.EndAt)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrOverlap
		}
		return s.repo.CreateSubscription(ctx, tx, &sub)
	})
	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Cancel marks the subscription cancelled; its entitlements stop immediately
// because the resolver only honors Active status.
func (s *Service) Cancel(ctx context.Context, subscriptionID string) error {
	return s.repo.SetSubscriptionStatus(ctx, subscriptionID, SubscriptionCancelled)
}
