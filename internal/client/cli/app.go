// Package cli implements the interactive banking client: a small REPL over
// the auth gateway and the banking operations.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/oshepkov/lockbank/internal/client/client"
	"github.com/oshepkov/lockbank/internal/client/config"
	"github.com/oshepkov/lockbank/internal/client/lockstate"
	"github.com/oshepkov/lockbank/internal/client/repositories/credentials"
	"github.com/oshepkov/lockbank/internal/client/services"
	"github.com/oshepkov/lockbank/internal/client/session"
	"github.com/oshepkov/lockbank/internal/filex"
	"github.com/oshepkov/lockbank/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	bank   services.BankService
	creds  credentials.Repository
	lock   *lockstate.Machine
	api    client.Client
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the credential store, transport client, session manager,
// lock machine and services from the given configuration.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.Default())

	creds, err := credentials.OpenSQLite(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "error", err)
		return nil, err
	}

	statements, err := filex.NewStatementDir(c.StatementDir)
	if err != nil {
		return nil, err
	}

	api := client.NewRESTClient(c.ServerAddr, c.Port(), c.HTTPSEnabled, &client.Options{Logger: log})
	sess := session.NewManager()
	lock := lockstate.New(c.LockDelay)

	return &App{
		config: c,
		auth:   services.NewAuthService(api, creds, sess, lock, log),
		bank:   services.NewBankService(api, sess, lock, statements, log),
		creds:  creds,
		lock:   lock,
		api:    api,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run drives the REPL until exit or EOF, then releases resources.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Main(ctx)
}

func (a *App) Close() {
	a.lock.Stop()
	_ = a.api.Close()
	_ = a.creds.Close()
}
