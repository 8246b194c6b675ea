package config

import (
	"os"

	"github.com/dmitrijs2005/askpro/internal/kvstore"
)

// Config holds runtime settings for the askpro CLI.
type Config struct {
	Backend      kvstore.Backend
	DSN          string
	LogLevel     string
	PersistUsers bool
}

// LoadDefaults populates c with defaults: a SQLite file in the working
// directory, info logging, signups kept in memory only.
func (c *Config) LoadDefaults() {
	c.Backend = kvstore.BackendSQLite
	c.DSN = "askpro.db"
	c.LogLevel = "info"
	c.PersistUsers = false
}

// StoreOptions returns the kvstore options described by c.
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{Backend: c.Backend, DSN: c.DSN}
}

// LoadConfig builds a Config from defaults, the environment, an optional
// JSON file and command-line flags, in that order. It panics on malformed
// input in any source.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
