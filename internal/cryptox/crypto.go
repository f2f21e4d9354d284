// Package cryptox implements the password hashing scheme that protects the
// local unlock password: a salted SHA-256 digest re-hashed for a fixed number
// of rounds and encoded as Base64.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// hashIterations is the number of extra digest rounds applied on top of the
// initial salt+password digest.
const hashIterations = 1000

// SaltSize is the length in bytes of a freshly generated salt.
const SaltSize = 32

// HashPassword derives the stored form of a password.
//
// The schedule is fixed: d0 = SHA-256(salt || password), then
// d(i+1) = SHA-256(salt || d(i)) for hashIterations rounds. The final digest
// is returned as standard padded Base64. Same password and salt always yield
// the same output.
func HashPassword(password string, salt []byte) string {
	d := sha256.New()
	d.Write(salt)
	d.Write([]byte(password))
	hashed := d.Sum(nil)

	for i := 0; i < hashIterations; i++ {
		d.Reset()
		d.Write(salt)
		d.Write(hashed)
		hashed = d.Sum(nil)
	}

	return base64.StdEncoding.EncodeToString(hashed)
}

// GenerateSalt returns SaltSize cryptographically random bytes. Every call
// produces a fresh value; salts must never be reused between password sets.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing plaintext passwords from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
