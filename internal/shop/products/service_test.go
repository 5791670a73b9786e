package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
	"github.com/simpleshop/shop-api/internal/testing/shoptest"
)

type stubSearchGateway struct {
	calls    int
	searchFn func(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error)
}

func (s *stubSearchGateway) SearchByPattern(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error) {
	s.calls++
	if s.searchFn != nil {
		return s.searchFn(ctx, pattern, limit)
	}
	return []ProductWithMeta{}, nil
}

func newTestService(t *testing.T, search SearchGateway) *Service {
	t.Helper()
	return NewService(NewRepository(shoptest.OpenDB(t)), search)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	cases := []Product{
		{Name: "Milk", Manufacturer: shoptest.Ptr("DairyCo"), Unit: "liter"},
		{Name: "Bolt", Manufacturer: nil, Unit: "pcs"},
		{Name: "", Manufacturer: shoptest.Ptr(""), Unit: ""},
	}
	for _, in := range cases {
		created, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		want := in
		want.ID = created.ID
		assert.Equal(t, want, got)
	}
}

func TestIDsIncreaseMonotonically(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	first, err := svc.Create(ctx, Product{Name: "A", Unit: "kg"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, Product{Name: "B", Unit: "kg"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	require.NoError(t, svc.Delete(ctx, second.ID))
	third, err := svc.Create(ctx, Product{Name: "C", Unit: "kg"})
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := newTestService(t, nil)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	created, err := svc.Create(ctx, Product{Name: "Milk", Manufacturer: shoptest.Ptr("DairyCo"), Unit: "liter"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, Product{Name: "Oat milk", Unit: "box"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, Product{ID: created.ID, Name: "Oat milk", Unit: "box"}, got)
}

func TestUpdateAndDeleteMissingAreNoOps(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	existing, err := svc.Create(ctx, Product{Name: "Keep", Unit: "pcs"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 999, Product{Name: "Ghost", Unit: "pcs"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 999))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Product{existing}, items)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	created, err := svc.Create(ctx, Product{Name: "A", Unit: "kg"})
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, created.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchRejectsOutOfRangeLimitBeforeQuerying(t *testing.T) {
	gw := &stubSearchGateway{}
	svc := newTestService(t, gw)

	for _, limit := range []int{-1, 0, 501, 10000} {
		_, err := svc.SearchByPattern(context.Background(), "dairy", limit)
		require.ErrorIs(t, err, httpx.ErrValidation, "limit %d", limit)
	}
	assert.Zero(t, gw.calls)

	for _, limit := range []int{MinSearchLimit, DefaultSearchLimit, MaxSearchLimit} {
		_, err := svc.SearchByPattern(context.Background(), "dairy", limit)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, gw.calls)
}

func TestSearchPassesPatternAndLimit(t *testing.T) {
	gw := &stubSearchGateway{
		searchFn: func(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error) {
			assert.Equal(t, "^\\{\"origin\"", pattern)
			assert.Equal(t, 7, limit)
			return []ProductWithMeta{{Product: Product{ID: 1, Name: "Cheese", Unit: "kg"}, Meta: []byte(`{"origin":"FR"}`)}}, nil
		},
	}
	svc := newTestService(t, gw)

	items, err := svc.SearchByPattern(context.Background(), "^\\{\"origin\"", 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"origin":"FR"}`, string(items[0].Meta))
}

func TestSearchWithoutGatewayIsUnavailable(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.SearchByPattern(context.Background(), "x", 10)
	require.ErrorIs(t, err, httpx.ErrUnavailable)

	_, err = svc.SearchByPattern(context.Background(), "x", 0)
	require.ErrorIs(t, err, httpx.ErrValidation)
}
