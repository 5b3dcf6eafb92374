package http

import (
	"context"
	"net/http"

	"libraryapi/internal/bundle"
	"libraryapi/internal/httpx"
)

// BundleMembershipService is the slice of the membership manager the handler
// needs.
type BundleMembershipService interface {
	AddBooks(ctx context.Context, bundleID string, bookIDs []string) (bundle.Result, error)
	RemoveBooks(ctx context.Context, bundleID string, bookIDs []string) (bundle.Result, error)
	Clear(ctx context.Context, bundleID string) (bundle.Result, error)
}

type BundleHandler struct {
	manager BundleMembershipService
}

func NewBundleHandler(manager BundleMembershipService) *BundleHandler {
	return &BundleHandler{manager: manager}
}

type memberBooksRequest struct {
	BookIDs []string `json:"book_ids" validate:"required,min=1,dive,uuid"`
}

// AddBooks handles POST /bundles/{id}/books
func (h *BundleHandler) AddBooks(w http.ResponseWriter, r *http.Request) {
	var req memberBooksRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	res, err := h.manager.AddBooks(r.Context(), r.PathValue("id"), req.BookIDs)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res)
}

// RemoveBooks handles DELETE /bundles/{id}/books
func (h *BundleHandler) RemoveBooks(w http.ResponseWriter, r *http.Request) {
	var req memberBooksRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	res, err := h.manager.RemoveBooks(r.Context(), r.PathValue("id"), req.BookIDs)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res)
}

// Clear handles POST /bundles/{id}/clear
func (h *BundleHandler) Clear(w http.ResponseWriter, r *http.Request) {
	res, err := h.manager.Clear(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res)
}
