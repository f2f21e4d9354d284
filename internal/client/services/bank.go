package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshepkov/lockbank/internal/client/client"
	"github.com/oshepkov/lockbank/internal/client/lockstate"
	"github.com/oshepkov/lockbank/internal/client/models"
	"github.com/oshepkov/lockbank/internal/client/session"
	"github.com/oshepkov/lockbank/internal/common"
	"github.com/oshepkov/lockbank/internal/filex"
	"github.com/oshepkov/lockbank/internal/logging"
)

// BankService exposes the authenticated banking operations. Every operation
// uses the current session key; if the service rejects it, the application
// is locked before the error is returned.
type BankService interface {
	Accounts(ctx context.Context) ([]models.Account, error)
	DownloadStatement(ctx context.Context) (string, error)
	ClearStatements(ctx context.Context) error
	Transfer(ctx context.Context, fromAccount, toAccount int, amount float64) (client.Status, error)
}

type bankService struct {
	client     client.Client
	session    *session.Manager
	lock       *lockstate.Machine
	statements *filex.StatementDir
	log        logging.Logger
}

// NewBankService constructs a BankService bound to its collaborators.
func NewBankService(c client.Client, sess *session.Manager, lock *lockstate.Machine, statements *filex.StatementDir, log logging.Logger) BankService {
	return &bankService{
		client:     c,
		session:    sess,
		lock:       lock,
		statements: statements,
		log:        log.With("component", "bank"),
	}
}

// guard forces a lock when the service rejected the session key, then hands
// the error back for propagation.
func (s *bankService) guard(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrAuthRejected) {
		s.lock.Lock()
		s.log.Warn(ctx, "session key rejected, application locked")
	}
	return err
}

// Accounts returns all accounts and their details for the current session.
func (s *bankService) Accounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.client.FetchAccounts(ctx, s.session.Key())
	if err != nil {
		return nil, s.guard(ctx, err)
	}

	for _, a := range accounts {
		s.log.Info(ctx, "account", "details", a.String())
	}
	return accounts, nil
}

// DownloadStatement fetches the current statement and persists it in the
// statement directory under a timestamp-derived name. Returns the path of
// the written file.
func (s *bankService) DownloadStatement(ctx context.Context) (string, error) {
	content, err := s.client.FetchStatement(ctx, s.session.Key())
	if err != nil {
		return "", s.guard(ctx, err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: no statement available", common.ErrorNotFound)
	}

	path, err := s.statements.Write(content)
	if err != nil {
		return "", fmt.Errorf("storing statement: %w", err)
	}

	s.log.Info(ctx, "statement downloaded", "path", path)
	return path, nil
}

// ClearStatements removes every downloaded statement file.
func (s *bankService) ClearStatements(ctx context.Context) error {
	return s.statements.Clear()
}

// Transfer moves funds between two accounts using the current session key
// and returns the service status code.
func (s *bankService) Transfer(ctx context.Context, fromAccount, toAccount int, amount float64) (client.Status, error) {
	status, err := s.client.Transfer(ctx, fromAccount, toAccount, amount, s.session.Key())
	if err != nil {
		return status, s.guard(ctx, err)
	}

	s.log.Info(ctx, "transfer completed", "from", fromAccount, "to", toAccount, "status", int(status))
	return status, nil
}
