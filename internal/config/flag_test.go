package config

import (
	"testing"

	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-b", "memory", "-d", "/tmp/x.db", "-l", "debug", "-u"},
			expected: &Config{
				Backend: kvstore.BackendMemory, DSN: "/tmp/x.db", LogLevel: "debug", PersistUsers: true,
			},
		},
		{
			name: "config flag ignored",
			args: []string{"-c", "cfg.json", "-b", "postgres"},
			expected: &Config{
				Backend: kvstore.BackendPostgres, DSN: "askpro.db", LogLevel: "info",
			},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{},
			expected: &Config{Backend: kvstore.BackendSQLite, DSN: "askpro.db", LogLevel: "info"},
		},
		{name: "unknown backend", args: []string{"-b", "mongo"}, expectPanic: true},
		{name: "bad bool", args: []string{"-u=maybe"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
