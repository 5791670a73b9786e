package purchases

import (
	"context"
	"fmt"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// ReferenceChecker reports whether a referenced row currently exists.
type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service holds purchase business rules.
type Service struct {
	repo      Repository
	products  ReferenceChecker
	customers ReferenceChecker
}

// NewService constructs a Service.
func NewService(repo Repository, products, customers ReferenceChecker) *Service {
	return &Service{repo: repo, products: products, customers: customers}
}

func (s *Service) List(ctx context.Context) ([]Purchase, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Purchase, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts the purchase once product_id and then customer_id resolve
// to existing rows.
func (s *Service) Create(ctx context.Context, purchase Purchase) (Purchase, error) {
	ok, err := s.products.Exists(ctx, purchase.ProductID)
	if err != nil {
		return Purchase{}, err
	}
	if !ok {
		return Purchase{}, fmt.Errorf("%w: invalid product_id", httpx.ErrValidation)
	}
	ok, err = s.customers.Exists(ctx, purchase.CustomerID)
	if err != nil {
		return Purchase{}, err
	}
	if !ok {
		return Purchase{}, fmt.Errorf("%w: invalid customer_id", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, purchase)
}

// Update replaces every field without re-checking references.
func (s *Service) Update(ctx context.Context, id int64, purchase Purchase) (Purchase, error) {
	if err := s.repo.Update(ctx, id, purchase); err != nil {
		return Purchase{}, err
	}
	purchase.ID = id
	return purchase, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
