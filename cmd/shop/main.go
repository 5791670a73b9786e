package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simpleshop/shop-api/internal/app"
	"github.com/simpleshop/shop-api/internal/migrate"
	"github.com/simpleshop/shop-api/internal/observability"
	"github.com/simpleshop/shop-api/internal/platform/db"
	"github.com/simpleshop/shop-api/internal/shop/customers"
	"github.com/simpleshop/shop-api/internal/shop/products"
	"github.com/simpleshop/shop-api/internal/shop/purchases"
	"github.com/simpleshop/shop-api/internal/shop/reports"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(".env")
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		logger.Error("open sqlite", slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	if err := migrate.Bootstrap(ctx, conn); err != nil {
		logger.Error("bootstrap schema", slog.Any("error", err))
		os.Exit(1)
	}

	var search products.SearchGateway
	if cfg.SearchEnabled() {
		pool, err := db.NewPostgres(ctx, cfg.SearchPGDSN, cfg.SearchPGMaxConns)
		if err != nil {
			logger.Error("connect search store", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		search = products.NewPGSearchGateway(pool)
	} else {
		logger.Info("SEARCH_PG_DSN not set, product search disabled")
	}

	productService := products.NewService(products.NewRepository(conn), search)
	customerService := customers.NewService(customers.NewRepository(conn))
	purchaseService := purchases.NewService(purchases.NewRepository(conn), productService, customerService)
	reportService := reports.NewService(reports.NewRepository(conn))

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		ProductHandler:  products.NewHandler(logger, productService),
		CustomerHandler: customers.NewHandler(logger, customerService),
		PurchaseHandler: purchases.NewHandler(logger, purchaseService),
		ReportHandler:   reports.NewHandler(logger, reportService),
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("sqlite", cfg.SQLitePath))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
