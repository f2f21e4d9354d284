// Package credentials persists the client's protected settings: the local
// password hash and salt, the banking-service username and password, and the
// first-run flag. Values are addressed by the fixed logical keys below and
// stored as plain strings; the hash/salt pair must be written together (see
// SetMany).
package credentials

import "context"

// Logical keys. Names are carried over from the original preference store.
const (
	// KeyFirstRun marks whether the application has ever been started.
	KeyFirstRun = "firstrun"
	// KeyLocalPassHash is the Base64 digest of the local unlock password.
	KeyLocalPassHash = "localpasshash"
	// KeyLocalPassSalt is the Base64 salt used for the local password hash.
	KeyLocalPassSalt = "localpasssalt"
	// KeyServerUser is the username presented to the banking service.
	KeyServerUser = "serveruser"
	// KeyServerPassword is the password presented to the banking service.
	KeyServerPassword = "serverpass"
)

// Repository is a thin key-value store for the credential fields.
//
// Get returns defaultValue when the key has never been set. Set is atomic
// per call. SetMany applies all pairs or none; it is used for multi-field
// updates such as storing a new hash together with its salt. Concurrent
// writers follow last-writer-wins semantics.
type Repository interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, pairs map[string]string) error
	Close() error
}
