package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/dbx"
)

// SQLStore implements Store over the kv table using a DBTX (either *sql.DB
// or *sql.Tx). Queries are written with '?' placeholders and rebound for the
// dialect.
type SQLStore struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	closer  io.Closer
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore returns a store bound to db. Close does not close db.
func NewSQLStore(db dbx.DBTX, d dbx.Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d}
}

// rebind rewrites '?' placeholders to $1..$n for postgres.
func (r *SQLStore) rebind(q string) string {
	if r.dialect != dbx.DialectPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, c := range q {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.rebind(`SELECT value FROM kv WHERE key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (r *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, r.rebind(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.rebind(`DELETE FROM kv WHERE key = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLStore) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (r *SQLStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}

// Replace clears the table and writes entries in one transaction. A store
// bound to a transaction joins it and leaves the commit to its owner.
func (r *SQLStore) Replace(ctx context.Context, entries map[string][]byte) error {
	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		inner := &SQLStore{db: tx, dialect: r.dialect}
		if err := inner.Clear(ctx); err != nil {
			return err
		}
		for k, v := range entries {
			if err := inner.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace kv: %w", err)
	}
	return nil
}

// Close closes the underlying database if the store opened it.
func (r *SQLStore) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
