package http

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/entitlement"
	"libraryapi/internal/httpx"
)

// SubscriptionService is the slice of the entitlement service the handler
// needs.
type SubscriptionService interface {
	ListPlans(ctx context.Context) ([]entitlement.Plan, error)
	ListSubscriptions(ctx context.Context, profileID string) ([]entitlement.Subscription, error)
	Subscribe(ctx context.Context, profileID, freePlanID, bundlePlanID string, startAt, endAt time.Time) (entitlement.Subscription, error)
	Cancel(ctx context.Context, subscriptionID string) error
}

type SubscriptionHandler struct {
	service SubscriptionService
}

func NewSubscriptionHandler(service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// ListPlans handles GET /plans
func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, plans)
}

type subscribeRequest struct {
	ProfileID    string     `json:"profile_id" validate:"required,uuid"`
	FreePlanID   string     `json:"free_plan_id" validate:"omitempty,uuid"`
	BundlePlanID string     `json:"bundle_plan_id" validate:"omitempty,uuid"`
	StartAt      *time.Time `json:"start_at"`
	EndAt        *time.Time `json:"end_at"`
}

// Subscribe handles POST /subscriptions
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	var startAt, endAt time.Time
	if req.StartAt != nil {
		startAt = *req.StartAt
	}
	if req.EndAt != nil {
		endAt = *req.EndAt
	}
	sub, err := h.service.Subscribe(r.Context(), req.ProfileID, req.FreePlanID, req.BundlePlanID, startAt, endAt)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, sub)
}

// Cancel handles POST /subscriptions/{id}/cancel
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Cancel(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, nil)
}

// ListSubscriptions handles GET /profiles/{id}/subscriptions
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListSubscriptions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, subs)
}
