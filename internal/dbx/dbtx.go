// Package dbx holds the database/sql plumbing behind the SQL key/value store:
// the DBTX handle shared by *sql.DB and *sql.Tx, the driver opener with its
// SQLite pragmas, and WithTx, which groups the kv rewrites done by a reset.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql the kv store runs its statements on.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Beginner is a handle that can open a transaction, such as *sql.DB.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside a transaction on h. When h can begin one, the
// transaction is committed if fn succeeds and rolled back on error or panic.
// A handle that cannot begin (an open *sql.Tx) is passed to fn as is, so the
// statements join the caller's transaction and the caller owns the commit.
//
//	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "DELETE FROM kv")
//	    return err
//	})
func WithTx(ctx context.Context, h DBTX, fn func(ctx context.Context, tx DBTX) error) (err error) {
	b, ok := h.(Beginner)
	if !ok {
		return fn(ctx, h)
	}

	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}
