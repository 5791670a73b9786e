package migrate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createSearchProduct = `CREATE TABLE IF NOT EXISTS product (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    manufacturer TEXT,
    unit TEXT NOT NULL,
    meta JSONB NOT NULL DEFAULT '{}'::jsonb
)`

// BootstrapSearch creates the PostgreSQL product table that backs pattern
// search.
func BootstrapSearch(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSearchProduct); err != nil {
		return fmt.Errorf("migrate: bootstrap search: %w", err)
	}
	return nil
}
