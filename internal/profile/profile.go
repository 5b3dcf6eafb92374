package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a borrower profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Profile is the borrower identity the lending core works with. It wraps the
// underlying account; borrow limits are resolved on demand from the
// borrower's subscription and never stored here.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository defines profile storage. EnsureProfile is the explicit creation
// hook the identity layer calls when an account is created; nothing in the
// lending core relies on implicit profile creation.
type Repository interface {
	EnsureProfile(ctx context.Context, userID string) (Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
	GetByUser(ctx context.Context, userID string) (Profile, error)
}
