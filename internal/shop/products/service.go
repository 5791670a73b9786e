package products

import (
	"context"
	"fmt"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// Search limit bounds.
const (
	DefaultSearchLimit = 50
	MinSearchLimit     = 1
	MaxSearchLimit     = 500
)

// Service holds product business rules.
type Service struct {
	repo   Repository
	search SearchGateway
}

// NewService builds the product service. search may be nil when no
// secondary store is configured; pattern search then reports unavailable.
func NewService(repo Repository, search SearchGateway) *Service {
	return &Service{repo: repo, search: search}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	return s.repo.Create(ctx, product)
}

// Update replaces every mutable field. A missing id matches no rows and is
// not an error.
func (s *Service) Update(ctx context.Context, id int64, product Product) (Product, error) {
	if err := s.repo.Update(ctx, id, product); err != nil {
		return Product{}, err
	}
	product.ID = id
	return product, nil
}

// Delete removes the product without looking at purchases that reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Exists reports whether a product row with id is present.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// SearchByPattern validates limit before reaching the search store.
func (s *Service) SearchByPattern(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error) {
	if limit < MinSearchLimit || limit > MaxSearchLimit {
		return nil, fmt.Errorf("%w: limit must be between %d and %d", httpx.ErrValidation, MinSearchLimit, MaxSearchLimit)
	}
	if s.search == nil {
		return nil, fmt.Errorf("%w: search store not configured", httpx.ErrUnavailable)
	}
	return s.search.SearchByPattern(ctx, pattern, limit)
}
