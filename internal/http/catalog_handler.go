package http

import (
	"context"
	"net/http"

	"libraryapi/internal/catalog"
	"libraryapi/internal/httpx"
)

// CatalogService is the slice of the catalog service the handler needs.
type CatalogService interface {
	CreateBookProfile(ctx context.Context, p *catalog.BookProfile) error
	GetBookProfile(ctx context.Context, id string) (catalog.BookProfile, error)
	ListBookProfiles(ctx context.Context) ([]catalog.BookProfile, error)
	CreateBook(ctx context.Context, b *catalog.Book) error
	GetBookDetail(ctx context.Context, id string) (catalog.BookDetail, error)
	ListBooks(ctx context.Context) ([]catalog.Book, error)
	DeleteBook(ctx context.Context, id string) error
	CreateBundle(ctx context.Context, b *catalog.Bundle) error
	GetBundleDetail(ctx context.Context, id string) (catalog.BundleDetail, error)
	ListBundles(ctx context.Context) ([]catalog.Bundle, error)
	DeleteBundle(ctx context.Context, id string) error
}

type CatalogHandler struct {
	service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createBookProfileRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	ISBN        string `json:"isbn" validate:"required,isbn"`
	Description string `json:"description" validate:"max=2000"`
	Author      string `json:"author" validate:"max=200"`
	Series      string `json:"series" validate:"max=200"`
}

// CreateBookProfile handles POST /book-profiles
func (h *CatalogHandler) CreateBookProfile(w http.ResponseWriter, r *http.Request) {
	var req createBookProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	p := catalog.BookProfile{
		Name:        req.Name,
		ISBN:        req.ISBN,
		Description: req.Description,
		Author:      req.Author,
		Series:      req.Series,
	}
	if err := h.service.CreateBookProfile(r.Context(), &p); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, p)
}

// GetBookProfile handles GET /book-profiles/{id}
func (h *CatalogHandler) GetBookProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetBookProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, p)
}

// ListBookProfiles handles GET /book-profiles
func (h *CatalogHandler) ListBookProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListBookProfiles(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, profiles)
}

type createBookRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	NLCode    string `json:"nl_code" validate:"required,nl_code"`
	Status    string `json:"status" validate:"omitempty,oneof=NORMAL PREPARING"`
}

// CreateBook handles POST /books
func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	b := catalog.Book{
		ProfileID: req.ProfileID,
		NLCode:    req.NLCode,
		Status:    catalog.Status(req.Status),
	}
	if err := h.service.CreateBook(r.Context(), &b); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, b)
}

// GetBook handles GET /books/{id}
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetBookDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail)
}

// ListBooks handles GET /books
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books)
}

// DeleteBook handles DELETE /books/{id}
func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBook(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

type createBundleRequest struct {
	Code        string `json:"code" validate:"required,max=10"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=NORMAL PREPARING"`
}

// CreateBundle handles POST /bundles
func (h *CatalogHandler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	var req createBundleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeValidationErrors(w, r, errs)
		return
	}

	b := catalog.Bundle{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      catalog.Status(req.Status),
	}
	if err := h.service.CreateBundle(r.Context(), &b); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, b)
}

// GetBundle handles GET /bundles/{id}
func (h *CatalogHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetBundleDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail)
}

// ListBundles handles GET /bundles
func (h *CatalogHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.service.ListBundles(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, bundles)
}

// DeleteBundle handles DELETE /bundles/{id}
func (h *CatalogHandler) DeleteBundle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBundle(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
