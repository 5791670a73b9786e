package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simpleshop/shop-api/internal/migrate"
	"github.com/simpleshop/shop-api/internal/platform/db"
)

func newMigrateCmd(c *cli) *cobra.Command {
	var (
		only       string
		search     bool
		sqlitePath string
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and apply additive migrations",
		Long: `Creates the product, customer and purchase tables when missing, then
applies the numbered migrations in order. Every migration is idempotent;
re-running reports what already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if sqlitePath == "" {
				sqlitePath = c.cfg.SQLitePath
			}
			conn, err := db.OpenSQLite(ctx, sqlitePath)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migrate.NewRunner(conn, c.logger).Run(ctx, only); err != nil {
				return err
			}
			if !search {
				return nil
			}
			if !c.cfg.SearchEnabled() {
				return fmt.Errorf("--search requires SEARCH_PG_DSN")
			}
			pool, err := db.NewPostgres(ctx, c.cfg.SearchPGDSN, c.cfg.SearchPGMaxConns)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := migrate.BootstrapSearch(ctx, pool); err != nil {
				return err
			}
			c.logger.Info("search schema ready")
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "apply a single migration by id (001, 002)")
	cmd.Flags().BoolVar(&search, "search", false, "also create the PostgreSQL search table")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "sqlite database path (default SQLITE_PATH)")
	return cmd
}
