package purchases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
	"github.com/simpleshop/shop-api/internal/shop/customers"
	"github.com/simpleshop/shop-api/internal/shop/products"
	"github.com/simpleshop/shop-api/internal/testing/shoptest"
)

type stubChecker struct {
	known map[int64]bool
	err   error
	calls int
}

func (s *stubChecker) Exists(ctx context.Context, id int64) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.known[id], nil
}

type fixture struct {
	svc        *Service
	productID  int64
	customerID int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	conn := shoptest.OpenDB(t)
	productSvc := products.NewService(products.NewRepository(conn), nil)
	customerSvc := customers.NewService(customers.NewRepository(conn))

	p, err := productSvc.Create(ctx, products.Product{Name: "Milk", Unit: "liter"})
	require.NoError(t, err)
	c, err := customerSvc.Create(ctx, customers.Customer{Name: "ACME"})
	require.NoError(t, err)

	return fixture{
		svc:        NewService(NewRepository(conn), productSvc, customerSvc),
		productID:  p.ID,
		customerID: c.ID,
	}
}

func TestCreateRequiresExistingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cases := []struct {
		name       string
		productID  int64
		customerID int64
		wantErr    string
	}{
		{"both missing reports product first", f.productID + 100, f.customerID + 100, "invalid product_id"},
		{"missing product", f.productID + 100, f.customerID, "invalid product_id"},
		{"missing customer", f.productID, f.customerID + 100, "invalid customer_id"},
		{"zero ids", 0, 0, "invalid product_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, Purchase{ProductID: tc.productID, CustomerID: tc.customerID, Quantity: 1, UnitPrice: 1})
			require.ErrorIs(t, err, httpx.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	items, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateAndGetWithValidReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := Purchase{
		ProductID:    f.productID,
		CustomerID:   f.customerID,
		Quantity:     10,
		UnitPrice:    19.99,
		DeliveryDate: shoptest.Ptr("2025-01-31"),
	}
	created, err := f.svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	in.ID = created.ID
	assert.Equal(t, in, got)
}

func TestCreateAcceptsValuesWithoutRangeChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.Create(ctx, Purchase{
		ProductID:    f.productID,
		CustomerID:   f.customerID,
		Quantity:     -5,
		UnitPrice:    -1.5,
		DeliveryDate: shoptest.Ptr("not a date"),
	})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), got.Quantity)
	assert.Equal(t, "not a date", *got.DeliveryDate)
}

func TestCreateChecksProductBeforeCustomer(t *testing.T) {
	productChecker := &stubChecker{known: map[int64]bool{}}
	customerChecker := &stubChecker{known: map[int64]bool{}}
	svc := NewService(nil, productChecker, customerChecker)

	_, err := svc.Create(context.Background(), Purchase{ProductID: 1, CustomerID: 1})
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, 1, productChecker.calls)
	assert.Zero(t, customerChecker.calls)
}

func TestCreatePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("database is locked")
	svc := NewService(nil, &stubChecker{err: boom}, &stubChecker{})

	_, err := svc.Create(context.Background(), Purchase{ProductID: 1, CustomerID: 1})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, httpx.ErrValidation)
}

func TestUpdateDoesNotRecheckReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.Create(ctx, Purchase{ProductID: f.productID, CustomerID: f.customerID, Quantity: 1, UnitPrice: 2})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, created.ID, Purchase{ProductID: 999, CustomerID: 888, Quantity: 3, UnitPrice: 4})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, Purchase{ID: created.ID, ProductID: 999, CustomerID: 888, Quantity: 3, UnitPrice: 4}, got)
}

func TestUpdateAndDeleteMissingPurchaseAreNoOps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Update(ctx, 42, Purchase{ProductID: f.productID, CustomerID: f.customerID, Quantity: 1, UnitPrice: 1})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, 42))

	_, err = f.svc.Get(ctx, 42)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
