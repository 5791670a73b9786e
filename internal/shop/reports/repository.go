package reports

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/simpleshop/shop-api/internal/shop/purchases"
)

const selectPurchase = purchases.SelectPurchase

// Repository runs the fixed report statements against the primary store.
type Repository interface {
	FilterByCustomerQuantityPrice(ctx context.Context, customerID, minQty int64, maxPrice float64) ([]purchases.Purchase, error)
	Joined(ctx context.Context) ([]JoinedPurchase, error)
	TotalsByCustomer(ctx context.Context) ([]CustomerTotal, error)
	Sorted(ctx context.Context, field SortField, dir SortOrder) ([]purchases.Purchase, error)
	ApplyPercentDiscount(ctx context.Context, customerID, minQty int64, percent float64) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository returns the SQLite-backed Repository.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FilterByCustomerQuantityPrice(ctx context.Context, customerID, minQty int64, maxPrice float64) ([]purchases.Purchase, error) {
	const query = selectPurchase + ` WHERE customer_id = ? AND quantity >= ? AND unit_price <= ?`
	out := []purchases.Purchase{}
	if err := r.db.SelectContext(ctx, &out, query, customerID, minQty, maxPrice); err != nil {
		return nil, fmt.Errorf("reports: where: %w", err)
	}
	return out, nil
}

func (r *repository) Joined(ctx context.Context) ([]JoinedPurchase, error) {
	const query = `SELECT pu.id AS purchase_id,
       pr.name AS product_name,
       cu.name AS customer_name,
       pu.quantity AS quantity,
       pu.unit_price AS unit_price,
       pu.delivery_date AS delivery_date
FROM purchase pu
JOIN product pr ON pr.id = pu.product_id
JOIN customer cu ON cu.id = pu.customer_id
ORDER BY pu.id`
	out := []JoinedPurchase{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("reports: join: %w", err)
	}
	return out, nil
}

func (r *repository) TotalsByCustomer(ctx context.Context) ([]CustomerTotal, error) {
	const query = `SELECT cu.id AS customer_id,
       cu.name AS customer_name,
       COUNT(pu.id) AS purchases_count,
       SUM(pu.quantity * pu.unit_price) AS total_sum
FROM purchase pu
JOIN customer cu ON cu.id = pu.customer_id
GROUP BY cu.id, cu.name
ORDER BY cu.id`
	out := []CustomerTotal{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("reports: groupby: %w", err)
	}
	return out, nil
}

func (r *repository) Sorted(ctx context.Context, field SortField, dir SortOrder) ([]purchases.Purchase, error) {
	query, err := sortStatement(field, dir)
	if err != nil {
		return nil, err
	}
	out := []purchases.Purchase{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("reports: sort: %w", err)
	}
	return out, nil
}

func (r *repository) ApplyPercentDiscount(ctx context.Context, customerID, minQty int64, percent float64) (int64, error) {
	const query = `UPDATE purchase
SET unit_price = unit_price * (100.0 - ?) / 100.0
WHERE customer_id = ? AND quantity >= ?`
	res, err := r.db.ExecContext(ctx, query, percent, customerID, minQty)
	if err != nil {
		return 0, fmt.Errorf("reports: discount: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reports: discount: rows affected: %w", err)
	}
	return n, nil
}
