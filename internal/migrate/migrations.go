package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/simpleshop/shop-api/internal/platform/db"
)

// Migration is one additive schema change. Apply must be safe to re-run and
// returns one human-readable line per step it considered.
type Migration struct {
	ID    string
	Name  string
	Apply func(ctx context.Context, tx *sqlx.Tx) ([]string, error)
}

// addColumn describes a column that migration 001 adds when absent.
type addColumn struct {
	table  string
	column string
	ddl    string
}

var addedColumns = []addColumn{
	{table: "product", column: "barcode", ddl: `ALTER TABLE product ADD COLUMN barcode TEXT`},
	{table: "customer", column: "email", ddl: `ALTER TABLE customer ADD COLUMN email TEXT`},
}

var purchaseIndexes = []struct {
	name string
	ddl  string
}{
	{"idx_purchase_product_id", `CREATE INDEX IF NOT EXISTS idx_purchase_product_id ON purchase(product_id)`},
	{"idx_purchase_customer_id", `CREATE INDEX IF NOT EXISTS idx_purchase_customer_id ON purchase(customer_id)`},
	{"idx_purchase_delivery_date", `CREATE INDEX IF NOT EXISTS idx_purchase_delivery_date ON purchase(delivery_date)`},
}

// All lists the migrations in application order.
func All() []Migration {
	return []Migration{
		{ID: "001", Name: "add_columns", Apply: applyAddColumns},
		{ID: "002", Name: "add_indexes", Apply: applyAddIndexes},
	}
}

func applyAddColumns(ctx context.Context, tx *sqlx.Tx) ([]string, error) {
	var out []string
	for _, c := range addedColumns {
		exists, err := columnExists(ctx, tx, c.table, c.column)
		if err != nil {
			return nil, err
		}
		if exists {
			out = append(out, fmt.Sprintf("column %s.%s already exists", c.table, c.column))
			continue
		}
		if _, err := tx.ExecContext(ctx, c.ddl); err != nil {
			return nil, fmt.Errorf("add column %s.%s: %w", c.table, c.column, err)
		}
		out = append(out, fmt.Sprintf("added column %s.%s", c.table, c.column))
	}
	return out, nil
}

func applyAddIndexes(ctx context.Context, tx *sqlx.Tx) ([]string, error) {
	out := make([]string, 0, len(purchaseIndexes))
	for _, idx := range purchaseIndexes {
		if _, err := tx.ExecContext(ctx, idx.ddl); err != nil {
			return nil, fmt.Errorf("create index %s: %w", idx.name, err)
		}
		out = append(out, fmt.Sprintf("index %s ensured", idx.name))
	}
	return out, nil
}

func columnExists(ctx context.Context, q sqlx.QueryerContext, table, column string) (bool, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	return count > 0, nil
}

// Runner applies migrations against the primary store.
type Runner struct {
	conn   *sqlx.DB
	logger *slog.Logger
}

// NewRunner constructs a Runner.
func NewRunner(conn *sqlx.DB, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{conn: conn, logger: logger}
}

// Run bootstraps the schema and applies the selected migrations. An empty
// only applies every migration.
func (r *Runner) Run(ctx context.Context, only string) error {
	if err := Bootstrap(ctx, r.conn); err != nil {
		return err
	}
	selected := 0
	for _, m := range All() {
		if only != "" && only != m.ID {
			continue
		}
		selected++
		var lines []string
		err := db.WithTx(ctx, r.conn, func(tx *sqlx.Tx) error {
			var err error
			lines, err = m.Apply(ctx, tx)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate: %s_%s: %w", m.ID, m.Name, err)
		}
		for _, line := range lines {
			r.logger.Info(line, slog.String("migration", m.ID))
		}
		r.logger.Info("migration complete", slog.String("migration", m.ID), slog.String("name", m.Name))
	}
	if selected == 0 {
		return fmt.Errorf("migrate: unknown migration %q", only)
	}
	return nil
}
