package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/oshepkov/lockbank/internal/flagx"
	"github.com/oshepkov/lockbank/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the lock delay either as
// a string like "2s" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config.
type JsonConfig struct {
	ServerAddr   string         `json:"server_addr"`
	HTTPPort     string         `json:"http_port"`
	HTTPSPort    string         `json:"https_port"`
	HTTPSEnabled *bool          `json:"https_enabled"`
	StatementDir string         `json:"statement_dir"`
	StorePath    string         `json:"store_path"`
	LockDelay    timex.Duration `json:"lock_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.HTTPPort != "" {
		cfg.HTTPPort = jc.HTTPPort
	}
	if jc.HTTPSPort != "" {
		cfg.HTTPSPort = jc.HTTPSPort
	}
	if jc.HTTPSEnabled != nil {
		cfg.HTTPSEnabled = *jc.HTTPSEnabled
	}
	if jc.StatementDir != "" {
		cfg.StatementDir = jc.StatementDir
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.LockDelay.Duration != 0 {
		cfg.LockDelay = time.Duration(jc.LockDelay.Duration)
	}
}
