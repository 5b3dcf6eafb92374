package auth

import (
	"context"
	"time"

	"libraryapi/internal/profile"
)

const tokenTTL = 24 * time.Hour

// Service registers accounts and issues tokens. Account creation calls
// EnsureProfile explicitly so every user owns a borrower profile without any
// implicit hook.
type Service struct {
	secret   string
	users    Repository
	profiles profile.Repository
}

func NewService(secret string, users Repository, profiles profile.Repository) *Service {
	return &Service{secret: secret, users: users, profiles: profiles}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (User, profile.Profile, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, profile.Profile{}, err
	}

	u := User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
	}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		return User{}, profile.Profile{}, err
	}

	p, err := s.profiles.EnsureProfile(ctx, u.ID)
	if err != nil {
		return User{}, profile.Profile{}, err
	}
	return u, p, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !VerifyPassword(u.PasswordHash, password) {
		return "", User{}, ErrUnauthorized
	}
	token, err := GenerateToken(s.secret, u.ID, u.Role, tokenTTL)
	if err != nil {
		return "", User{}, err
	}
	return token, u, nil
}
