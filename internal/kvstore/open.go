package kvstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/askpro/internal/dbx"
	"github.com/dmitrijs2005/askpro/internal/migrations"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Backend Backend
	// DSN is the SQLite file path or the Postgres connection string.
	DSN string
}

// Open returns the Store described by opts. SQL backends are migrated
// before the store is returned.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQL(ctx, dbx.DialectSQLite, opts.DSN)
	case BackendPostgres:
		return OpenSQL(ctx, dbx.DialectPostgres, opts.DSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// OpenSQL opens dsn, applies migrations and returns a store that owns the
// connection.
func OpenSQL(ctx context.Context, d dbx.Dialect, dsn string) (*SQLStore, error) {
	db, err := dbx.Open(ctx, d, dsn)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := NewSQLStore(db, d)
	s.closer = db
	return s, nil
}
