package services

import (
	"context"

	"github.com/oshepkov/lockbank/internal/client/client"
	"github.com/oshepkov/lockbank/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	CloseErr error

	LoginRet   client.LoginResult
	LoginErr   error
	LoginCalls int

	AccountsRet []models.Account
	AccountsErr error

	StatementRet []byte
	StatementErr error

	TransferRet client.Status
	TransferErr error

	// recorded arguments
	LastLoginUser string
	LastLoginPass string

	LastSessionKey string

	LastTransferFrom   int
	LastTransferTo     int
	LastTransferAmount float64
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Login(ctx context.Context, username, password string) (client.LoginResult, error) {
	f.LoginCalls++
	f.LastLoginUser = username
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) FetchAccounts(ctx context.Context, sessionKey string) ([]models.Account, error) {
	f.LastSessionKey = sessionKey
	return f.AccountsRet, f.AccountsErr
}

func (f *fakeClient) FetchStatement(ctx context.Context, sessionKey string) ([]byte, error) {
	f.LastSessionKey = sessionKey
	return f.StatementRet, f.StatementErr
}

func (f *fakeClient) Transfer(ctx context.Context, fromAccount, toAccount int, amount float64, sessionKey string) (client.Status, error) {
	f.LastSessionKey = sessionKey
	f.LastTransferFrom = fromAccount
	f.LastTransferTo = toAccount
	f.LastTransferAmount = amount
	return f.TransferRet, f.TransferErr
}
