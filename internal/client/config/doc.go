// Package config loads runtime configuration for the banking client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string      banking service address
//	-p string      HTTP port
//	-sp string     HTTPS port
//	-https bool    enable HTTPS (use -https=true)
//	-d string      statement directory
//	-f string      credential store file
//	-l int         lock delay (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the lock delay, so values can be
// either strings like "2s" or integer nanoseconds:
//
//	{
//	  "server_addr": "10.0.2.2",
//	  "http_port": "8080",
//	  "https_port": "8443",
//	  "https_enabled": false,
//	  "statement_dir": "statements",
//	  "store_path": "bank.db",
//	  "lock_delay": "2s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings, including Port()
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
