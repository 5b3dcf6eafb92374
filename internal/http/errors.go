package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"libraryapi/internal/auth"
	"libraryapi/internal/catalog"
	"libraryapi/internal/entitlement"
	"libraryapi/internal/httpx"
	"libraryapi/internal/lending"
	"libraryapi/internal/profile"
	"libraryapi/internal/store"
)

// writeDomainError maps the core error taxonomy to HTTP. Invariant
// violations are logged before being hidden behind a generic internal error.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, profile.ErrNotFound),
		errors.Is(err, entitlement.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "not_found", err.Error(), nil)

	case errors.Is(err, lending.ErrNotAvailable):
		httpx.JSONError(w, r, http.StatusConflict, "not_available", err.Error(), nil)

	case errors.Is(err, lending.ErrEntitlement):
		httpx.JSONError(w, r, http.StatusForbidden, "entitlement", err.Error(), nil)

	case errors.Is(err, lending.ErrNoActiveRecord):
		httpx.JSONError(w, r, http.StatusBadRequest, "no_active_record", err.Error(), nil)

	case errors.Is(err, entitlement.ErrNoPlanSelected):
		httpx.JSONError(w, r, http.StatusBadRequest, "invalid_request", err.Error(), nil)

	case errors.Is(err, catalog.ErrConflict),
		errors.Is(err, entitlement.ErrOverlap),
		errors.Is(err, store.ErrTxConflict),
		errors.Is(err, auth.ErrUserExists):
		httpx.JSONError(w, r, http.StatusConflict, "conflict", err.Error(), nil)

	case errors.Is(err, auth.ErrUnauthorized):
		httpx.JSONError(w, r, http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)

	case errors.Is(err, lending.ErrInvariant),
		errors.Is(err, entitlement.ErrOverlappingActive):
		log.Printf("invariant violation: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "invariant_violation", "Data inconsistency detected", nil)

	default:
		log.Printf("internal error: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "An internal error occurred", nil)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return false
	}
	return true
}

func writeValidationErrors(w http.ResponseWriter, r *http.Request, errs []ValidationError) {
	details := make([]httpx.ErrorDetail, len(errs))
	for i, e := range errs {
		details[i] = httpx.ErrorDetail{Field: e.Field, Message: e.Message}
	}
	httpx.JSONError(w, r, http.StatusBadRequest, "validation_failed", "Request validation failed", details)
}
