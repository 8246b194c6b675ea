package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/joho/godotenv"
)

const (
	envMode         = "ASKPRO_ENV"
	envBackend      = "ASKPRO_BACKEND"
	envDSN          = "ASKPRO_DSN"
	envLogLevel     = "ASKPRO_LOG_LEVEL"
	envPersistUsers = "ASKPRO_PERSIST_USERS"
)

// parseEnv overlays cfg with ASKPRO_* variables that are set. In dev mode a
// missing .env file is not an error.
func parseEnv(cfg *Config) {
	if os.Getenv(envMode) == "dev" {
		_ = godotenv.Load()
	}

	cfg.Backend = kvstore.Backend(getEnv(envBackend, string(cfg.Backend)))
	cfg.DSN = getEnv(envDSN, cfg.DSN)
	cfg.LogLevel = getEnv(envLogLevel, cfg.LogLevel)

	if v, ok := os.LookupEnv(envPersistUsers); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envPersistUsers, err))
		}
		cfg.PersistUsers = b
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
