package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ddenisov/go-contact-keeper/internal/config"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the placeholder-aware
// statement builder and the driver-specific error classifier. It is passed
// by reference into every repository; there is no package-level connection.
type DB struct {
	*sql.DB

	// builder produces queries with the placeholder format of the active
	// driver ($N for Postgres, ? for SQLite).
	builder sq.StatementBuilderType

	driver          string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Builder returns the placeholder-aware squirrel statement builder for the
// active driver.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Driver returns the database/sql driver name the handle was opened with.
// The migration runner uses it to pick the matching goose dialect.
func (db *DB) Driver() string {
	return db.driver
}

// NewDatabase opens a connection to the configured database engine, pings it,
// and returns a ready-to-use handle.
//
// Supported drivers: "pgx" (PostgreSQL, the default) and "sqlite3".
func NewDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "", "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
