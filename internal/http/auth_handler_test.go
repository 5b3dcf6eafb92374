package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libraryapi/internal/auth"
	"libraryapi/internal/httpx"
	"libraryapi/internal/profile"
)

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockAuthService(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)
	handler := NewAuthHandler(mockService, mockProfiles)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), "reader", "reader@example.com", "secret-pass").
			Return(auth.User{ID: "u1", Username: "reader", Email: "reader@example.com"},
				profile.Profile{ID: "p1", UserID: "u1"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"reader","email":"reader@example.com","password":"secret-pass"}`))

		handler.Register(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"profile_id":"p1"`)
	})

	t.Run("duplicate username maps to 409", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), "reader", "reader@example.com", "secret-pass").
			Return(auth.User{}, profile.Profile{}, auth.ErrUserExists)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"reader","email":"reader@example.com","password":"secret-pass"}`))

		handler.Register(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"reader","email":"reader@example.com","password":"short"}`))

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockAuthService(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)
	handler := NewAuthHandler(mockService, mockProfiles)

	body := `{"username":"reader","password":"secret-pass"}`

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "reader", "secret-pass").
			Return("token-abc", auth.User{ID: "u1", Role: auth.RoleUser}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

		handler.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token-abc")
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "reader", "secret-pass").
			Return("", auth.User{}, auth.ErrUnauthorized)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockAuthService(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)
	handler := NewAuthHandler(mockService, mockProfiles)

	t.Run("success", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUser(gomock.Any(), "u1").
			Return(profile.Profile{ID: "p1", UserID: "u1", Username: "reader"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u1", auth.RoleUser))
		w := httptest.NewRecorder()

		handler.Me(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"profile_id":"p1"`)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/me", nil)

		handler.Me(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
