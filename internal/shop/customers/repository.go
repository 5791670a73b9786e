package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// Repository persists customers in the primary store.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int64) (Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, id int64, customer Customer) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository returns the SQLite-backed Repository.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectCustomer = `SELECT id, name, address, phone, contact_person FROM customer`

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	customers := []Customer{}
	if err := r.db.SelectContext(ctx, &customers, selectCustomer); err != nil {
		return nil, fmt.Errorf("customers: list: %w", err)
	}
	return customers, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, selectCustomer+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, fmt.Errorf("%w: customer not found", httpx.ErrNotFound)
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: get: %w", err)
	}
	return c, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.GetContext(ctx, &found, `SELECT id FROM customer WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("customers: exists: %w", err)
	}
	return true, nil
}

func (r *repository) Create(ctx context.Context, customer Customer) (Customer, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customer (name, address, phone, contact_person) VALUES (?, ?, ?, ?)`,
		customer.Name, customer.Address, customer.Phone, customer.ContactPerson)
	if err != nil {
		return Customer{}, fmt.Errorf("customers: create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Customer{}, fmt.Errorf("customers: create: last insert id: %w", err)
	}
	customer.ID = id
	return customer, nil
}

func (r *repository) Update(ctx context.Context, id int64, customer Customer) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE customer SET name = ?, address = ?, phone = ?, contact_person = ? WHERE id = ?`,
		customer.Name, customer.Address, customer.Phone, customer.ContactPerson, id)
	if err != nil {
		return fmt.Errorf("customers: update: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE id = ?`, id); err != nil {
		return fmt.Errorf("customers: delete: %w", err)
	}
	return nil
}
