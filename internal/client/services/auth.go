// Package services contains the application services of the banking client.
// This file defines the auth gateway: setting and verifying the local unlock
// password, the unlock flow against the remote service, and locking.
package services

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/oshepkov/lockbank/internal/client/client"
	"github.com/oshepkov/lockbank/internal/client/lockstate"
	"github.com/oshepkov/lockbank/internal/client/repositories/credentials"
	"github.com/oshepkov/lockbank/internal/client/session"
	"github.com/oshepkov/lockbank/internal/common"
	"github.com/oshepkov/lockbank/internal/cryptox"
	"github.com/oshepkov/lockbank/internal/logging"
)

// AuthService is the gateway between credential checks and the lock state.
//
// Contract:
//   - SetLocalPassword: store a fresh salt + hash for the unlock password.
//   - CheckPassword: verify a candidate against the stored hash.
//   - SetServerCredentials: store the banking-service username/password.
//   - Unlock: local check, then remote login; only both succeeding unlocks.
//   - Lock: always succeeds, no remote call.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	SetLocalPassword(ctx context.Context, password string) error
	CheckPassword(ctx context.Context, enteredPassword string) (bool, error)
	SetServerCredentials(ctx context.Context, username, password string) error
	Unlock(ctx context.Context, enteredPassword string) (client.Status, error)
	Lock()
	IsLocked() bool
}

// authService is the concrete AuthService backed by the transport client,
// the credential repository, the session manager and the lock machine.
type authService struct {
	client  client.Client
	creds   credentials.Repository
	session *session.Manager
	lock    *lockstate.Machine
	log     logging.Logger

	// unlockMu serializes Unlock calls per instance so concurrent attempts
	// cannot interleave session and lock updates.
	unlockMu sync.Mutex
}

// NewAuthService constructs an AuthService bound to its collaborators.
func NewAuthService(c client.Client, creds credentials.Repository, sess *session.Manager, lock *lockstate.Machine, log logging.Logger) AuthService {
	return &authService{
		client:  c,
		creds:   creds,
		session: sess,
		lock:    lock,
		log:     log.With("component", "auth"),
	}
}

// SetLocalPassword generates a fresh 32-byte salt, hashes the password with
// it, and stores both in one transaction. The salt is never reused across
// password sets.
func (a *authService) SetLocalPassword(ctx context.Context, password string) error {
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return fmt.Errorf("salt generation error: %w", err)
	}

	hash := cryptox.HashPassword(password, salt)

	err = a.creds.SetMany(ctx, map[string]string{
		credentials.KeyLocalPassHash: hash,
		credentials.KeyLocalPassSalt: base64.StdEncoding.EncodeToString(salt),
	})
	if err != nil {
		return fmt.Errorf("storing local password: %w", err)
	}

	a.log.Info(ctx, "local password updated")
	return nil
}

// CheckPassword hashes the candidate with the stored salt and compares it to
// the stored hash in constant time. With no password set, both stored values
// default to "" and any normal candidate fails the comparison.
func (a *authService) CheckPassword(ctx context.Context, enteredPassword string) (bool, error) {
	saltB64, err := a.creds.Get(ctx, credentials.KeyLocalPassSalt, "")
	if err != nil {
		return false, fmt.Errorf("reading salt: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		// A stored salt that fails to decode means the credential store is
		// corrupted, not that the password is wrong.
		return false, fmt.Errorf("%w: decoding salt: %v", common.ErrorInternal, err)
	}

	storedHash, err := a.creds.Get(ctx, credentials.KeyLocalPassHash, "")
	if err != nil {
		return false, fmt.Errorf("reading hash: %w", err)
	}

	enteredHash := cryptox.HashPassword(enteredPassword, salt)

	return subtle.ConstantTimeCompare([]byte(enteredHash), []byte(storedHash)) == 1, nil
}

// SetServerCredentials stores the banking-service username and password.
// The values are kept as plain strings, matching the original system.
func (a *authService) SetServerCredentials(ctx context.Context, username, password string) error {
	err := a.creds.SetMany(ctx, map[string]string{
		credentials.KeyServerUser:     username,
		credentials.KeyServerPassword: password,
	})
	if err != nil {
		return fmt.Errorf("storing server credentials: %w", err)
	}
	return nil
}

// Unlock verifies the entered password and, on a match, performs the remote
// login with the stored server credentials.
//
// Outcomes:
//   - local mismatch: returns StatusNoOp, transport never invoked, locked.
//   - transport error: propagated, lock state unchanged.
//   - service status != NoError: status returned, still locked.
//   - service status == NoError: session stored, state unlocked.
func (a *authService) Unlock(ctx context.Context, enteredPassword string) (client.Status, error) {
	a.unlockMu.Lock()
	defer a.unlockMu.Unlock()

	ok, err := a.CheckPassword(ctx, enteredPassword)
	if err != nil {
		return client.StatusNoOp, err
	}
	if !ok {
		a.log.Warn(ctx, "unlock attempt with wrong local password")
		return client.StatusNoOp, nil
	}

	username, err := a.creds.Get(ctx, credentials.KeyServerUser, "")
	if err != nil {
		return client.StatusNoOp, fmt.Errorf("reading server username: %w", err)
	}
	password, err := a.creds.Get(ctx, credentials.KeyServerPassword, "")
	if err != nil {
		return client.StatusNoOp, fmt.Errorf("reading server password: %w", err)
	}

	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return client.StatusNoOp, fmt.Errorf("login error: %w", err)
	}

	if res.Status != client.StatusNoError {
		a.log.Warn(ctx, "service refused login", "status", int(res.Status))
		return res.Status, nil
	}

	a.session.Set(res.SessionKey, res.SessionCreateDate)
	a.lock.Unlock()
	a.log.Info(ctx, "application unlocked")

	return res.Status, nil
}

// Lock secures the application. It never fails, needs no confirmation, and
// leaves the session fields in place.
func (a *authService) Lock() {
	a.lock.Lock()
	a.log.Info(context.Background(), "application locked")
}

// IsLocked reports the current lock state.
func (a *authService) IsLocked() bool {
	return a.lock.IsLocked()
}
