package purchases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// Repository persists purchases in the primary store.
type Repository interface {
	List(ctx context.Context) ([]Purchase, error)
	Get(ctx context.Context, id int64) (Purchase, error)
	Create(ctx context.Context, purchase Purchase) (Purchase, error)
	Update(ctx context.Context, id int64, purchase Purchase) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository returns the SQLite-backed Repository.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// SelectPurchase is the column list shared with report queries.
const SelectPurchase = `SELECT id, product_id, customer_id, quantity, unit_price, delivery_date FROM purchase`

func (r *repository) List(ctx context.Context) ([]Purchase, error) {
	out := []Purchase{}
	if err := r.db.SelectContext(ctx, &out, SelectPurchase); err != nil {
		return nil, fmt.Errorf("purchases: list: %w", err)
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Purchase, error) {
	var p Purchase
	err := r.db.GetContext(ctx, &p, SelectPurchase+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Purchase{}, fmt.Errorf("%w: purchase not found", httpx.ErrNotFound)
	}
	if err != nil {
		return Purchase{}, fmt.Errorf("purchases: get: %w", err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, purchase Purchase) (Purchase, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO purchase (product_id, customer_id, quantity, unit_price, delivery_date) VALUES (?, ?, ?, ?, ?)`,
		purchase.ProductID, purchase.CustomerID, purchase.Quantity, purchase.UnitPrice, purchase.DeliveryDate)
	if err != nil {
		return Purchase{}, fmt.Errorf("purchases: create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Purchase{}, fmt.Errorf("purchases: create: last insert id: %w", err)
	}
	purchase.ID = id
	return purchase, nil
}

func (r *repository) Update(ctx context.Context, id int64, purchase Purchase) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchase SET product_id = ?, customer_id = ?, quantity = ?, unit_price = ?, delivery_date = ? WHERE id = ?`,
		purchase.ProductID, purchase.CustomerID, purchase.Quantity, purchase.UnitPrice, purchase.DeliveryDate, id)
	if err != nil {
		return fmt.Errorf("purchases: update: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM purchase WHERE id = ?`, id); err != nil {
		return fmt.Errorf("purchases: delete: %w", err)
	}
	return nil
}
