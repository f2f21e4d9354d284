package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-a", "10.0.2.2", "-p", "9090", "-https=true", "-l", "5"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "10.0.2.2", cfg.ServerAddr)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.HTTPSEnabled)
	assert.Equal(t, 5*time.Second, cfg.LockDelay)
	assert.Equal(t, "8443", cfg.HTTPSPort, "untouched fields keep defaults")
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t, nil)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "127.0.0.1", cfg.ServerAddr)
	assert.Equal(t, 2*time.Second, cfg.LockDelay)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, []string{"-unknown", "zzz", "-a", "bank.local"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "bank.local", cfg.ServerAddr)
}
