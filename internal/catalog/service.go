package catalog

import (
	"context"
	"fmt"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateBookProfile(ctx context.Context, p *BookProfile) error {
	return s.repo.CreateBookProfile(ctx, p)
}

func (s *Service) GetBookProfile(ctx context.Context, id string) (BookProfile, error) {
	return s.repo.GetBookProfile(ctx, id)
}

func (s *Service) ListBookProfiles(ctx context.Context) ([]BookProfile, error) {
	return s.repo.ListBookProfiles(ctx)
}

func (s *Service) CreateBook(ctx context.Context, b *Book) error {
	// New copies always enter circulation as Normal; Preparing is opt-in.
	if b.Status != "" && b.Status != StatusNormal && b.Status != StatusPreparing {
		return fmt.Errorf("new book status must be Normal or Preparing: %w", ErrConflict)
	}
	return s.repo.CreateBook(ctx, b)
}

func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) GetBookDetail(ctx context.Context, id string) (BookDetail, error) {
	return s.repo.GetBookDetail(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) CreateBundle(ctx context.Context, b *Bundle) error {
	if b.Status != "" && !ValidBundleStatuses[b.Status] {
		return fmt.Errorf("invalid bundle status %s: %w", b.Status, ErrConflict)
	}
	return s.repo.CreateBundle(ctx, b)
}

func (s *Service) GetBundle(ctx context.Context, id string) (Bundle, error) {
	return s.repo.GetBundle(ctx, id)
}

func (s *Service) GetBundleDetail(ctx context.Context, id string) (BundleDetail, error) {
	return s.repo.GetBundleDetail(ctx, id)
}

func (s *Service) ListBundles(ctx context.Context) ([]Bundle, error) {
	return s.repo.ListBundles(ctx)
}

func (s *Service) DeleteBundle(ctx context.Context, id string) error {
	return s.repo.DeleteBundle(ctx, id)
}
