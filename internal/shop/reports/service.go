package reports

import (
	"context"

	"github.com/simpleshop/shop-api/internal/shop/purchases"
)

// Service answers the read-only purchase reports and the bulk discount.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FilterByCustomerQuantityPrice(ctx context.Context, customerID, minQty int64, maxPrice float64) ([]purchases.Purchase, error) {
	return s.repo.FilterByCustomerQuantityPrice(ctx, customerID, minQty, maxPrice)
}

// JoinedView drops purchases whose product or customer no longer exists.
func (s *Service) JoinedView(ctx context.Context) ([]JoinedPurchase, error) {
	return s.repo.Joined(ctx)
}

// AggregateByCustomer omits customers with no purchases.
func (s *Service) AggregateByCustomer(ctx context.Context) ([]CustomerTotal, error) {
	return s.repo.TotalsByCustomer(ctx)
}

// SortedPurchases rejects anything outside the whitelist before querying.
func (s *Service) SortedPurchases(ctx context.Context, by, order string) ([]purchases.Purchase, error) {
	field, dir, err := ParseSort(by, order)
	if err != nil {
		return nil, err
	}
	return s.repo.Sorted(ctx, field, dir)
}

// ApplyPercentDiscount scales unit_price by (100-percent)/100. percent is
// not clamped; values above 100 produce negative prices.
func (s *Service) ApplyPercentDiscount(ctx context.Context, customerID, minQty int64, percent float64) (UpdatedRows, error) {
	n, err := s.repo.ApplyPercentDiscount(ctx, customerID, minQty, percent)
	if err != nil {
		return UpdatedRows{}, err
	}
	return UpdatedRows{UpdatedRows: n}, nil
}
