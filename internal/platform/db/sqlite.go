// Package db opens the primary SQLite store and the PostgreSQL search store.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// busyTimeout makes concurrent writers wait for the lock instead of failing
// with SQLITE_BUSY.
const busyTimeout = "_pragma=busy_timeout(5000)"

// OpenSQLite opens the primary store at path and verifies the connection.
// Foreign key enforcement is left at the SQLite default (off): purchases may
// keep pointing at deleted products or customers.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("platform/db: sqlite path is empty")
	}
	conn, err := sqlx.Open(DriverName, sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("platform/db: open sqlite: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("platform/db: ping sqlite: %w", err)
	}
	return conn, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + busyTimeout
	}
	return path + "?" + busyTimeout
}
