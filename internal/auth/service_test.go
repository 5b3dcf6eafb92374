package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/profile"
)

type fakeUserRepo struct {
	users map[string]User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Username]; ok {
		return ErrUserExists
	}
	u.ID = "u-" + u.Username
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return User{}, ErrUnauthorized
}

type fakeProfileRepo struct {
	ensured []string
}

func (r *fakeProfileRepo) EnsureProfile(ctx context.Context, userID string) (profile.Profile, error) {
	r.ensured = append(r.ensured, userID)
	return profile.Profile{ID: "p-" + userID, UserID: userID}, nil
}

func (r *fakeProfileRepo) Get(ctx context.Context, id string) (profile.Profile, error) {
	return profile.Profile{}, profile.ErrNotFound
}

func (r *fakeProfileRepo) GetByUser(ctx context.Context, userID string) (profile.Profile, error) {
	return profile.Profile{}, profile.ErrNotFound
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{users: map[string]User{}}
	profiles := &fakeProfileRepo{}
	svc := NewService("secret", users, profiles)

	u, p, err := svc.Register(ctx, "reader", "reader@example.com", "secret-pass")
	require.NoError(t, err)

	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "secret-pass", u.PasswordHash)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, []string{u.ID}, profiles.ensured)

	_, _, err = svc.Register(ctx, "reader", "other@example.com", "secret-pass")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{users: map[string]User{}}
	svc := NewService("secret", users, &fakeProfileRepo{})

	_, _, err := svc.Register(ctx, "reader", "reader@example.com", "secret-pass")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, u, err := svc.Login(ctx, "reader", "secret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseToken("secret", token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.Sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "reader", "nope")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ghost", "secret-pass")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
