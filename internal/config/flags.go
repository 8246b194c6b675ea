package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/askpro/internal/flagx"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
)

// parseFlags overlays cfg with -b, -d, -l and -u from args. Other flags are
// filtered out first so -c/-config do not trip the parser. An unknown
// backend or a parse failure panics.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-b", "-d", "-l"}, "-u")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.Backend), "storage backend (sqlite, postgres, memory)")
	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "SQLite file path or Postgres DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.PersistUsers, "u", cfg.PersistUsers, "persist signups across restarts")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	switch b := kvstore.Backend(*backend); b {
	case kvstore.BackendSQLite, kvstore.BackendPostgres, kvstore.BackendMemory:
		cfg.Backend = b
	default:
		panic(fmt.Errorf("unknown backend %q", *backend))
	}
}
