// Package seed fills a running shop API with random products, customers and
// purchases through its public HTTP endpoints.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simpleshop/shop-api/internal/shop/customers"
	"github.com/simpleshop/shop-api/internal/shop/products"
	"github.com/simpleshop/shop-api/internal/shop/purchases"
)

var (
	units         = []string{"pcs", "kg", "liter", "box"}
	manufacturers = []string{"DairyCo", "MegaFood", "FreshFarm", "TechParts"}
)

const progressEvery = 50

// Options controls the size and target of a seeding run.
type Options struct {
	BaseURL     string
	Products    int
	Customers   int
	Purchases   int
	Concurrency int
	Timeout     time.Duration
}

// DefaultOptions mirrors the volumes used for local demos.
func DefaultOptions() Options {
	return Options{
		BaseURL:     "http://127.0.0.1:8000",
		Products:    50,
		Customers:   30,
		Purchases:   300,
		Concurrency: 4,
		Timeout:     10 * time.Second,
	}
}

func (o Options) validate() error {
	if strings.TrimSpace(o.BaseURL) == "" {
		return errors.New("seed: base url is required")
	}
	if o.Products < 1 || o.Customers < 1 {
		return errors.New("seed: products and customers must be positive")
	}
	if o.Purchases < 0 {
		return errors.New("seed: purchases must not be negative")
	}
	if o.Concurrency < 1 {
		return errors.New("seed: concurrency must be positive")
	}
	return nil
}

// Summary counts the records created by a run.
type Summary struct {
	Products  int
	Customers int
	Purchases int
}

// Seeder posts generated records to the API.
type Seeder struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
	rng    *rand.Rand
	now    func() time.Time
}

// New returns a Seeder. A nil rng seeds from the runtime source.
func New(opts Options, logger *slog.Logger, rng *rand.Rand) (*Seeder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		logger: logger,
		rng:    rng,
		now:    time.Now,
	}, nil
}

// Run creates products and customers in order, then fans purchases out over
// Concurrency workers. The first failed request cancels the rest.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	productIDs := make([]int64, 0, s.opts.Products)
	for i := range s.opts.Products {
		var created products.Product
		if err := s.post(ctx, "/products", s.product(i+1), &created); err != nil {
			return summary, err
		}
		productIDs = append(productIDs, created.ID)
	}
	summary.Products = len(productIDs)
	s.logger.Info("seeded products", slog.Int("count", summary.Products))

	customerIDs := make([]int64, 0, s.opts.Customers)
	for i := range s.opts.Customers {
		var created customers.Customer
		if err := s.post(ctx, "/customers", s.customer(i+1), &created); err != nil {
			return summary, err
		}
		customerIDs = append(customerIDs, created.ID)
	}
	summary.Customers = len(customerIDs)
	s.logger.Info("seeded customers", slog.Int("count", summary.Customers))

	// Payloads are generated up front so workers never share the rng.
	payloads := make([]purchases.PurchaseInput, s.opts.Purchases)
	for i := range payloads {
		payloads[i] = s.purchase(productIDs, customerIDs)
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for _, payload := range payloads {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := s.post(gctx, "/purchases", payload, nil); err != nil {
				return err
			}
			if n := done.Add(1); n%progressEvery == 0 {
				s.logger.Info("seeding purchases", slog.Int64("done", n), slog.Int("total", len(payloads)))
			}
			return nil
		})
	}
	err := g.Wait()
	summary.Purchases = int(done.Load())
	if err != nil {
		return summary, err
	}
	s.logger.Info("seed complete",
		slog.Int("products", summary.Products),
		slog.Int("customers", summary.Customers),
		slog.Int("purchases", summary.Purchases),
	)
	return summary, nil
}

func (s *Seeder) product(n int) products.ProductInput {
	return products.ProductInput{
		Name:         ptr(fmt.Sprintf("Product %d", n)),
		Manufacturer: ptr(pick(s.rng, manufacturers)),
		Unit:         ptr(pick(s.rng, units)),
	}
}

func (s *Seeder) customer(n int) customers.CustomerInput {
	return customers.CustomerInput{
		Name:          ptr(fmt.Sprintf("Customer %d", n)),
		Address:       ptr(fmt.Sprintf("Street %d", between(s.rng, 1, 200))),
		Phone:         ptr(fmt.Sprintf("+374%d", between(s.rng, 10000000, 99999999))),
		ContactPerson: ptr(fmt.Sprintf("Person %d", between(s.rng, 1, 200))),
	}
}

func (s *Seeder) purchase(productIDs, customerIDs []int64) purchases.PurchaseInput {
	price := math.Round((1+s.rng.Float64()*499)*100) / 100
	return purchases.PurchaseInput{
		ProductID:    pick(s.rng, productIDs),
		CustomerID:   pick(s.rng, customerIDs),
		Quantity:     ptr(int64(between(s.rng, 1, 100))),
		UnitPrice:    ptr(price),
		DeliveryDate: ptr(s.deliveryDate()),
	}
}

// deliveryDate falls between 90 days ago and 30 days ahead, inclusive.
func (s *Seeder) deliveryDate() string {
	start := s.now().AddDate(0, 0, -90)
	return start.AddDate(0, 0, s.rng.IntN(121)).Format(time.DateOnly)
}

func (s *Seeder) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("seed: encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(s.opts.BaseURL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("seed: build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("seed: post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("seed: post %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("seed: decode %s: %w", path, err)
	}
	return nil
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// between returns a value in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func ptr[T any](v T) *T {
	return &v
}
