package client

import (
	"context"

	"github.com/oshepkov/lockbank/internal/client/models"
)

// Status is a banking-service status code as returned inside response
// bodies. Zero is the distinguished "no error" value; StatusNoOp marks an
// operation that was not attempted (e.g. a failed local password check).
// Positive values are server-defined error codes passed through verbatim.
type Status int

const (
	// StatusNoError is the service's "no error" code.
	StatusNoError Status = 0
	// StatusNoOp marks an operation that never reached the service.
	StatusNoOp Status = -1
)

// LoginResult carries the outcome of a login call: the service status code
// and, when the status is StatusNoError, the issued session credentials.
type LoginResult struct {
	Status            Status
	SessionKey        string
	SessionCreateDate string
}

// Client is the transport contract against the banking service. The server
// address and port are bound at construction; the session key for
// authenticated operations is passed per call.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (LoginResult, error)
	FetchAccounts(ctx context.Context, sessionKey string) ([]models.Account, error)
	FetchStatement(ctx context.Context, sessionKey string) ([]byte, error)
	Transfer(ctx context.Context, fromAccount, toAccount int, amount float64, sessionKey string) (Status, error)
}
