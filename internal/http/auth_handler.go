package http

import (
	"context"
	"net/http"

	"libraryapi/internal/auth"
	"libraryapi/internal/httpx"
	"libraryapi/internal/profile"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (auth.User, profile.Profile, error)
	Login(ctx context.Context, username, password string) (string, auth.User, error)
}

type ProfileReader interface {
	GetByUser(ctx context.Context, userID string) (profile.Profile, error)
}

type AuthHandler struct {
	service  AuthService
	profiles ProfileReader
}

func NewAuthHandler(service AuthService, profiles ProfileReader) *AuthHandler {
	return &AuthHandler{service: service, profiles: profiles}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type registerResponse struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	u, p, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, registerResponse{
		UserID:    u.ID,
		ProfileID: p.ID,
		Username:  u.Username,
		Email:     u.Email,
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	token, u, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, loginResponse{Token: token, Role: u.Role})
}

type meResponse struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "unauthorized", "Missing credentials", nil)
		return
	}
	p, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, meResponse{
		UserID:    userID,
		ProfileID: p.ID,
		Username:  p.Username,
		Role:      httpx.RoleFrom(r),
	})
}
