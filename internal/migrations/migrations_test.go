package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/askpro/internal/dbx"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestUp_CreatesKVTable(t *testing.T) {
	ctx := context.Background()
	db, err := dbx.Open(ctx, dbx.DialectSQLite, filepath.Join(t.TempDir(), "askpro.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(ctx, db, dbx.DialectSQLite))

	require.True(t, tableExists(t, db, "kv"))
	require.True(t, tableExists(t, db, "goose_db_version"))
}

func TestUp_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := dbx.Open(ctx, dbx.DialectSQLite, filepath.Join(t.TempDir(), "askpro.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(ctx, db, dbx.DialectSQLite))
	require.NoError(t, Up(ctx, db, dbx.DialectSQLite), "second run must be a no-op")
}

func TestUp_UnknownDialect(t *testing.T) {
	require.Error(t, Up(context.Background(), nil, dbx.Dialect("oracle")))
}

func TestFS_HasBothDialects(t *testing.T) {
	for _, p := range []string{"sqlite/00001_create_kv.sql", "postgres/00001_create_kv.sql"} {
		b, err := FS.ReadFile(p)
		require.NoError(t, err, p)
		require.Contains(t, string(b), "-- +goose Up")
	}
}
