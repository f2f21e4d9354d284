package config

import (
	"flag"
	"os"
	"time"

	"github.com/oshepkov/lockbank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string      banking service address (default from Config)
//	-p string      HTTP port
//	-sp string     HTTPS port
//	-https bool    enable HTTPS (use -https=true)
//	-d string      statement directory
//	-f string      credential store file
//	-l int         lock delay in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-sp", "-https", "-d", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "banking service address")
	fs.StringVar(&cfg.HTTPPort, "p", cfg.HTTPPort, "HTTP port")
	fs.StringVar(&cfg.HTTPSPort, "sp", cfg.HTTPSPort, "HTTPS port")
	fs.BoolVar(&cfg.HTTPSEnabled, "https", cfg.HTTPSEnabled, "enable HTTPS")
	fs.StringVar(&cfg.StatementDir, "d", cfg.StatementDir, "statement directory")
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "credential store file")
	lockDelay := fs.Int("l", int(cfg.LockDelay.Seconds()), "lock delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LockDelay = time.Duration(*lockDelay) * time.Second
}
