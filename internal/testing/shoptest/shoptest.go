// Package shoptest provides fixtures shared by package tests.
package shoptest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/simpleshop/shop-api/internal/migrate"
	"github.com/simpleshop/shop-api/internal/platform/db"
)

// OpenDB opens a fresh SQLite store in a temp dir with the base schema.
func OpenDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, migrate.Bootstrap(ctx, conn))
	return conn
}

// Logger discards output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
