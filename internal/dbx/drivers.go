//go:build !js

package dbx

// database/sql drivers registered as "sqlite" and "pgx". The browser build
// stores data in localStorage and links neither.
import (
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)
