package http

import (
	"context"
	"net/http"

	"libraryapi/internal/catalog"
	"libraryapi/internal/httpx"
	"libraryapi/internal/lending"
)

// CirculationService is the slice of the lending engine the handler needs.
type CirculationService interface {
	Borrow(ctx context.Context, itemID, borrowerID, notes string) (lending.Record, error)
	Return(ctx context.Context, itemID, notes string) (lending.Record, error)
	MarkLost(ctx context.Context, itemID string) (*lending.Record, error)
	WriteOff(ctx context.Context, itemID string) error
	GetRecord(ctx context.Context, id string) (lending.Record, error)
	ListBorrowerRecords(ctx context.Context, profileID string) ([]lending.Record, error)
	ListItemRecords(ctx context.Context, kind catalog.Kind, itemID string) ([]lending.Record, error)
}

type CirculationHandler struct {
	service CirculationService
}

func NewCirculationHandler(service CirculationService) *CirculationHandler {
	return &CirculationHandler{service: service}
}

type borrowRequest struct {
	ItemID     string `json:"item_id" validate:"required,uuid"`
	BorrowerID string `json:"borrower_id" validate:"required,uuid"`
	Notes      string `json:"notes" validate:"max=2000"`
}

// Borrow handles POST /circulation/borrow
func (h *CirculationHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	rec, err := h.service.Borrow(r.Context(), req.ItemID, req.BorrowerID, req.Notes)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, recordView(rec))
}

type returnRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Notes  string `json:"notes" validate:"max=2000"`
}

// Return handles POST /circulation/return
func (h *CirculationHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	rec, err := h.service.Return(r.Context(), req.ItemID, req.Notes)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, recordView(rec))
}

type itemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// MarkLost handles POST /circulation/lost
func (h *CirculationHandler) MarkLost(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	rec, err := h.service.MarkLost(r.Context(), req.ItemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if rec == nil {
		httpx.JSONSuccess(w, r, nil)
		return
	}
	httpx.JSONSuccess(w, r, recordView(*rec))
}

// WriteOff handles POST /circulation/write-off
func (h *CirculationHandler) WriteOff(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	if err := h.service.WriteOff(r.Context(), req.ItemID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, nil)
}

// GetRecord handles GET /circulation/records/{id}
func (h *CirculationHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.GetRecord(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, recordView(rec))
}

// ListBorrowerRecords handles GET /circulation/borrowers/{id}/records
func (h *CirculationHandler) ListBorrowerRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListBorrowerRecords(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	views := make([]recordResponse, len(records))
	for i, rec := range records {
		views[i] = recordView(rec)
	}
	httpx.JSONSuccess(w, r, views)
}

// ListBookRecords handles GET /circulation/books/{id}/records
func (h *CirculationHandler) ListBookRecords(w http.ResponseWriter, r *http.Request) {
	h.listItemRecords(w, r, catalog.KindBook)
}

// ListBundleRecords handles GET /circulation/bundles/{id}/records
func (h *CirculationHandler) ListBundleRecords(w http.ResponseWriter, r *http.Request) {
	h.listItemRecords(w, r, catalog.KindBundle)
}

func (h *CirculationHandler) listItemRecords(w http.ResponseWriter, r *http.Request, kind catalog.Kind) {
	records, err := h.service.ListItemRecords(r.Context(), kind, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	views := make([]recordResponse, len(records))
	for i, rec := range records {
		views[i] = recordView(rec)
	}
	httpx.JSONSuccess(w, r, views)
}

type recordResponse struct {
	lending.Record
	StatusDisplay string `json:"status_display"`
}

func recordView(rec lending.Record) recordResponse {
	return recordResponse{Record: rec, StatusDisplay: rec.Status.Display()}
}
