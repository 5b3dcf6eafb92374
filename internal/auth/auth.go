package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnauthorized covers bad credentials; callers never learn which
	// half was wrong.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUserExists is returned when the username or email is taken.
	ErrUserExists = errors.New("user already exists")
)

const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
)

// User is an account in the identity layer the lending core sits behind.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository defines user account storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
