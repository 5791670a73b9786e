package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// Repository persists products in the primary store.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository returns the SQLite-backed Repository.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, `SELECT id, name, manufacturer, unit FROM product`); err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	return products, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.GetContext(ctx, &p, `SELECT id, name, manufacturer, unit FROM product WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, fmt.Errorf("%w: product not found", httpx.ErrNotFound)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get: %w", err)
	}
	return p, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.GetContext(ctx, &found, `SELECT id FROM product WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("products: exists: %w", err)
	}
	return true, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product (name, manufacturer, unit) VALUES (?, ?, ?)`,
		product.Name, product.Manufacturer, product.Unit)
	if err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Product{}, fmt.Errorf("products: create: last insert id: %w", err)
	}
	product.ID = id
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE product SET name = ?, manufacturer = ?, unit = ? WHERE id = ?`,
		product.Name, product.Manufacturer, product.Unit, id)
	if err != nil {
		return fmt.Errorf("products: update: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, id); err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	return nil
}
