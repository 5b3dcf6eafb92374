package http

import (
	"net/http"

	"libraryapi/internal/auth"
	"libraryapi/internal/httpx"
)

// RouterConfig bundles the handlers and cross-cutting settings the router
// needs.
type RouterConfig struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Bundles      *BundleHandler
	Circulation  *CirculationHandler
	Subscription *SubscriptionHandler

	JWTSecret    string
	RateLimitRPS float64
	RateBurst    int
	MaxBodyBytes int64
	Health       http.HandlerFunc
	Ready        http.HandlerFunc
}

// NewRouter wires every route through the shared middleware chain. Reads are
// open to any authenticated user; catalog and circulation mutations are
// staff-only, while borrowing and subscribing stay available to borrowers.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	authed := httpx.AuthMiddleware(cfg.JWTSecret)
	staff := func(h http.HandlerFunc) http.Handler {
		return authed(httpx.RequireRole(auth.RoleStaff)(h))
	}
	user := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	if cfg.Health != nil {
		mux.Handle("GET /healthz", cfg.Health)
	}
	if cfg.Ready != nil {
		mux.Handle("GET /readyz", cfg.Ready)
	}

	mux.HandleFunc("POST /auth/register", cfg.Auth.Register)
	mux.HandleFunc("POST /auth/login", cfg.Auth.Login)
	mux.Handle("GET /me", user(cfg.Auth.Me))

	mux.Handle("POST /book-profiles", staff(cfg.Catalog.CreateBookProfile))
	mux.Handle("GET /book-profiles", user(cfg.Catalog.ListBookProfiles))
	mux.Handle("GET /book-profiles/{id}", user(cfg.Catalog.GetBookProfile))

	mux.Handle("POST /books", staff(cfg.Catalog.CreateBook))
	mux.Handle("GET /books", user(cfg.Catalog.ListBooks))
	mux.Handle("GET /books/{id}", user(cfg.Catalog.GetBook))
	mux.Handle("DELETE /books/{id}", staff(cfg.Catalog.DeleteBook))

	mux.Handle("POST /bundles", staff(cfg.Catalog.CreateBundle))
	mux.Handle("GET /bundles", user(cfg.Catalog.ListBundles))
	mux.Handle("GET /bundles/{id}", user(cfg.Catalog.GetBundle))
	mux.Handle("DELETE /bundles/{id}", staff(cfg.Catalog.DeleteBundle))

	mux.Handle("POST /bundles/{id}/books", staff(cfg.Bundles.AddBooks))
	mux.Handle("DELETE /bundles/{id}/books", staff(cfg.Bundles.RemoveBooks))
	mux.Handle("POST /bundles/{id}/clear", staff(cfg.Bundles.Clear))

	mux.Handle("POST /circulation/borrow", user(cfg.Circulation.Borrow))
	mux.Handle("POST /circulation/return", user(cfg.Circulation.Return))
	mux.Handle("POST /circulation/lost", staff(cfg.Circulation.MarkLost))
	mux.Handle("POST /circulation/write-off", staff(cfg.Circulation.WriteOff))
	mux.Handle("GET /circulation/records/{id}", user(cfg.Circulation.GetRecord))
	mux.Handle("GET /circulation/borrowers/{id}/records", user(cfg.Circulation.ListBorrowerRecords))
	mux.Handle("GET /circulation/books/{id}/records", user(cfg.Circulation.ListBookRecords))
	mux.Handle("GET /circulation/bundles/{id}/records", user(cfg.Circulation.ListBundleRecords))

	mux.Handle("GET /plans", user(cfg.Subscription.ListPlans))
	mux.Handle("POST /subscriptions", user(cfg.Subscription.Subscribe))
	mux.Handle("POST /subscriptions/{id}/cancel", user(cfg.Subscription.Cancel))
	mux.Handle("GET /profiles/{id}/subscriptions", user(cfg.Subscription.ListSubscriptions))

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateBurst)

	var handler http.Handler = mux
	handler = httpx.AccessLogMiddleware(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)
	return handler
}
