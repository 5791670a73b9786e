package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// SearchGateway answers pattern queries against the secondary store.
type SearchGateway interface {
	SearchByPattern(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error)
}

// invalid_regular_expression
const pgInvalidRegex = "2201B"

// PGSearchGateway runs POSIX regex matches over product meta in PostgreSQL.
type PGSearchGateway struct {
	pool *pgxpool.Pool
}

// NewPGSearchGateway wraps a pgx pool.
func NewPGSearchGateway(pool *pgxpool.Pool) *PGSearchGateway {
	return &PGSearchGateway{pool: pool}
}

// SearchByPattern returns at most limit products whose serialised meta
// matches pattern.
func (g *PGSearchGateway) SearchByPattern(ctx context.Context, pattern string, limit int) ([]ProductWithMeta, error) {
	const query = `SELECT id, name, manufacturer, unit, meta
FROM product
WHERE meta::text ~ $1
ORDER BY id
LIMIT $2`

	rows, err := g.pool.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, mapSearchError(err)
	}
	defer rows.Close()

	out := []ProductWithMeta{}
	for rows.Next() {
		var (
			p    ProductWithMeta
			meta []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Manufacturer, &p.Unit, &meta); err != nil {
			return nil, fmt.Errorf("products: search scan: %w", err)
		}
		p.Meta = meta
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSearchError(err)
	}
	return out, nil
}

func mapSearchError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidRegex {
		return fmt.Errorf("%w: invalid pattern: %s", httpx.ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("products: search: %w", err)
}
