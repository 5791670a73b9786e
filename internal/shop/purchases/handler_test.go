package purchases

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleshop/shop-api/internal/testing/shoptest"
)

func TestPurchaseHTTP(t *testing.T) {
	f := newFixture(t)
	r := chi.NewRouter()
	NewHandler(shoptest.Logger(), f.svc).MountRoutes(r)

	send := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	rr := send(http.MethodPost, "/purchases", `{"product_id":99,"customer_id":1,"quantity":1,"unit_price":2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid product_id")

	rr = send(http.MethodPost, "/purchases", `{"product_id":1,"customer_id":99,"quantity":1,"unit_price":2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid customer_id")

	rr = send(http.MethodPost, "/purchases", `{"product_id":1,"customer_id":1,"unit_price":2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "quantity is required")

	rr = send(http.MethodPost, "/purchases", `{"product_id":1,"customer_id":1,"quantity":10,"unit_price":20,"delivery_date":"2025-03-01"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"id":1,"product_id":1,"customer_id":1,"quantity":10,"unit_price":20,"delivery_date":"2025-03-01"}`, rr.Body.String())

	rr = send(http.MethodGet, "/purchases/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"product_id":1,"customer_id":1,"quantity":10,"unit_price":20,"delivery_date":"2025-03-01"}`, rr.Body.String())

	rr = send(http.MethodGet, "/purchases/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "purchase not found")

	rr = send(http.MethodDelete, "/purchases/2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted":2}`, rr.Body.String())

	rr = send(http.MethodPut, "/purchases/42", `{"product_id":1,"customer_id":1,"unit_price":2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "quantity is required")

	rr = send(http.MethodPut, "/purchases/42", `{"product_id":500,"customer_id":500,"quantity":0,"unit_price":0}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":42,"product_id":500,"customer_id":500,"quantity":0,"unit_price":0,"delivery_date":null}`, rr.Body.String())
}
