package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/askpro/internal/flagx"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the current value alone, so PersistUsers is a pointer.
type JsonConfig struct {
	Backend      string `json:"backend"`
	DSN          string `json:"dsn"`
	LogLevel     string `json:"log_level"`
	PersistUsers *bool  `json:"persist_users"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Without
// either flag it does nothing; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.JSONConfigFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != "" {
		cfg.Backend = kvstore.Backend(jc.Backend)
	}
	if jc.DSN != "" {
		cfg.DSN = jc.DSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.PersistUsers != nil {
		cfg.PersistUsers = *jc.PersistUsers
	}
}
