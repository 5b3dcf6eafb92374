package entitlement

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced plan or subscription does not exist.
var ErrNotFound = errors.New("plan or subscription not found")

// ErrOverlap is returned when a new subscription window would overlap an
// existing active subscription for the same borrower.
var ErrOverlap = errors.New("active subscription already covers this period")

// ErrOverlappingActive signals data corruption: more than one active
// subscription covers the same instant for one borrower. The resolver never
// picks among them; it fails loudly.
var ErrOverlappingActive = errors.New("multiple overlapping active subscriptions")

// ErrNoPlanSelected is returned when a subscription names neither plan kind.
var ErrNoPlanSelected = errors.New("at least one plan must be selected")

// PlanKind distinguishes free-book plans from bundle plans.
type PlanKind string

const (
	PlanFree   PlanKind = "FREE"
	PlanBundle PlanKind = "BUNDLE"
)

// Plan grants a maximum number of concurrently borrowed items of one kind.
type Plan struct {
	ID             string   `json:"id"`
	Kind           PlanKind `json:"kind"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	MaxConcurrent  int      `json:"max_concurrent"`
	Active         bool     `json:"is_active"`
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription links a borrower to plans over a time window.
type Subscription struct {
	ID         string             `json:"id"`
	ProfileID  string             `json:"profile_id"`
	FreePlan   *Plan              `json:"free_plan,omitempty"`
	BundlePlan *Plan              `json:"bundle_plan,omitempty"`
	StartAt    time.Time          `json:"start_at"`
	EndAt      time.Time          `json:"end_at"`
	Status     SubscriptionStatus `json:"status"`
}

// InWindow reports whether the subscription covers the given instant.
func (s Subscription) InWindow(at time.Time) bool {
	return s.Status == SubscriptionActive && !at.Before(s.StartAt) && at.Before(s.EndAt)
}

// Limits is a borrower's effective entitlement for one item kind.
type Limits struct {
	MaxConcurrent int
	HasPlan       bool
}
