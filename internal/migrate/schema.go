// Package migrate owns the shop schema: the bootstrap DDL applied at server
// start and the additive, idempotent migrations applied by shopctl.
package migrate

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	createProduct = `CREATE TABLE IF NOT EXISTS product (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    manufacturer TEXT,
    unit TEXT NOT NULL
)`

	createCustomer = `CREATE TABLE IF NOT EXISTS customer (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    address TEXT,
    phone TEXT,
    contact_person TEXT
)`

	createPurchase = `CREATE TABLE IF NOT EXISTS purchase (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL,
    customer_id INTEGER NOT NULL,
    quantity INTEGER NOT NULL,
    unit_price REAL NOT NULL,
    delivery_date TEXT,
    FOREIGN KEY(product_id) REFERENCES product(id),
    FOREIGN KEY(customer_id) REFERENCES customer(id)
)`
)

var bootstrapDDL = []string{createProduct, createCustomer, createPurchase}

// Bootstrap creates the base tables when they are missing.
func Bootstrap(ctx context.Context, conn *sqlx.DB) error {
	for _, ddl := range bootstrapDDL {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migrate: bootstrap: %w", err)
		}
	}
	return nil
}
