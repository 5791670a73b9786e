package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleshop/shop-api/internal/observability"
	"github.com/simpleshop/shop-api/internal/shop/customers"
	"github.com/simpleshop/shop-api/internal/shop/products"
	"github.com/simpleshop/shop-api/internal/shop/purchases"
	"github.com/simpleshop/shop-api/internal/shop/reports"
	"github.com/simpleshop/shop-api/internal/testing/shoptest"
)

func newTestRouter(t *testing.T, cfg *Config) (http.Handler, *bytes.Buffer) {
	t.Helper()
	conn := shoptest.OpenDB(t)
	var logs bytes.Buffer
	logger := newLogger(&logs, cfg)

	productSvc := products.NewService(products.NewRepository(conn), nil)
	customerSvc := customers.NewService(customers.NewRepository(conn))
	purchaseSvc := purchases.NewService(purchases.NewRepository(conn), productSvc, customerSvc)

	return NewRouter(RouterParams{
		Logger:           logger,
		Config:           cfg,
		ProductHandler:   products.NewHandler(logger, productSvc),
		CustomerHandler:  customers.NewHandler(logger, customerSvc),
		PurchaseHandler:  purchases.NewHandler(logger, purchaseSvc),
		ReportHandler:    reports.NewHandler(logger, reports.NewService(reports.NewRepository(conn))),
		Metrics:          observability.NewMetrics(),
		DisableAccessLog: true,
	}), &logs
}

func testConfig() *Config {
	return &Config{SQLitePath: "unused", LogFormat: "json", LogLevel: "info"}
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterServesShopAPI(t *testing.T) {
	h, _ := newTestRouter(t, testConfig())

	rr := serve(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = serve(h, http.MethodPost, "/products", `{"name":"Milk","unit":"liter"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = serve(h, http.MethodPost, "/customers", `{"name":"ACME"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = serve(h, http.MethodPost, "/purchases", `{"product_id":1,"customer_id":1,"quantity":2,"unit_price":10}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = serve(h, http.MethodGet, "/q/groupby", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"customer_id":1,"customer_name":"ACME","purchases_count":1,"total_sum":20}]`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/search/products?pattern=x", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = serve(h, http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

	rr = serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `shop_http_requests_total{code="200",route="/products"} 1`)
	assert.Contains(t, rr.Body.String(), `shop_http_requests_total{code="400",route="/products/{id}"} 1`)
}

func TestRouterRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AppRateLimit = 1
	h, _ := newTestRouter(t, cfg)

	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/healthz", "").Code)
}

func TestRouterDoesNotLogClientErrors(t *testing.T) {
	h, logs := newTestRouter(t, testConfig())

	rr := serve(h, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, logs.String())
}

func TestParseTestMode(t *testing.T) {
	for raw, want := range map[string]bool{"1": true, "true": true, "0": false, "": false, "yes": false} {
		assert.Equal(t, want, parseTestMode(raw), raw)
	}
}
