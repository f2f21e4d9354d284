package config

import "time"

// Config holds runtime settings for the banking client.
//
// Fields:
//   - ServerAddr: host of the banking service.
//   - HTTPPort / HTTPSPort: ports used depending on HTTPSEnabled.
//   - HTTPSEnabled: whether requests go over TLS.
//   - StatementDir: directory for downloaded statements.
//   - StorePath: path of the local credential database.
//   - LockDelay: debounce delay for the background re-lock check.
type Config struct {
	ServerAddr   string
	HTTPPort     string
	HTTPSPort    string
	HTTPSEnabled bool
	StatementDir string
	StorePath    string
	LockDelay    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1"
	c.HTTPPort = "8080"
	c.HTTPSPort = "8443"
	c.HTTPSEnabled = false
	c.StatementDir = "statements"
	c.StorePath = "bank.db"
	c.LockDelay = 2 * time.Second
}

// Port returns the port matching the HTTPS setting.
func (c *Config) Port() string {
	if c.HTTPSEnabled {
		return c.HTTPSPort
	}
	return c.HTTPPort
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
