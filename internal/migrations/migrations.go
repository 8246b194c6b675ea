// Package migrations embeds the goose migrations of the SQL key-value store,
// one directory per dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/askpro/internal/dbx"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Up applies every pending migration for dialect d. It is idempotent.
func Up(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
	var gooseDialect, dir string
	switch d {
	case dbx.DialectSQLite:
		gooseDialect, dir = "sqlite3", "sqlite"
	case dbx.DialectPostgres:
		gooseDialect, dir = "postgres", "postgres"
	default:
		return fmt.Errorf("unsupported dialect %q", d)
	}

	goose.SetBaseFS(FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
