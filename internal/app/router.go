package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/simpleshop/shop-api/internal/observability"
	"github.com/simpleshop/shop-api/internal/shop/customers"
	"github.com/simpleshop/shop-api/internal/shop/products"
	"github.com/simpleshop/shop-api/internal/shop/purchases"
	"github.com/simpleshop/shop-api/internal/shop/reports"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	ProductHandler   *products.Handler
	CustomerHandler  *customers.Handler
	PurchaseHandler  *purchases.Handler
	ReportHandler    *reports.Handler
	Metrics          *observability.Metrics
	DisableAccessLog bool
}

// NewRouter constructs the chi.Router with the shop API defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	if !params.DisableAccessLog {
		r.Use(chimw.Logger)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.ProductHandler != nil {
		params.ProductHandler.MountRoutes(r)
	}
	if params.CustomerHandler != nil {
		params.CustomerHandler.MountRoutes(r)
	}
	if params.PurchaseHandler != nil {
		params.PurchaseHandler.MountRoutes(r)
	}
	if params.ReportHandler != nil {
		params.ReportHandler.MountRoutes(r)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
