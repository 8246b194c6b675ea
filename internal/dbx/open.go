package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Dialect names a supported SQL engine.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DriverName returns the database/sql driver registered for d.
func (d Dialect) DriverName() (string, error) {
	switch d {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

// sqlitePragmas keep a single local writer from tripping over "database is locked".
var sqlitePragmas = []string{
	`PRAGMA journal_mode=WAL;`,
	`PRAGMA busy_timeout=5000;`,
}

// Open opens and pings a database for dialect d.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	driver, err := d.DriverName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if d == DialectSQLite {
		// go-sqlite serializes writers; one connection avoids SQLITE_BUSY on
		// in-memory databases, where each connection is a separate database.
		db.SetMaxOpenConns(1)
		for _, p := range sqlitePragmas {
			if _, err := db.ExecContext(ctx, p); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("apply %q: %w", p, err)
			}
		}
	} else {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return db, nil
}
