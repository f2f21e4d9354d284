package cryptox

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	h1 := HashPassword("secret-password", salt)
	h2 := HashPassword("secret-password", salt)

	assert.Equal(t, h1, h2, "same inputs must hash to the same value")
}

func TestHashPassword_DifferentPasswords(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	h1 := HashPassword("password-one", salt)
	h2 := HashPassword("password-two", salt)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	h1 := HashPassword("secret-password", salt1)
	h2 := HashPassword("secret-password", salt2)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_OutputIsStandardBase64(t *testing.T) {
	salt := bytes.Repeat([]byte{0x7F}, SaltSize)

	h := HashPassword("secret-password", salt)

	raw, err := base64.StdEncoding.DecodeString(h)
	require.NoError(t, err)
	assert.Len(t, raw, 32, "decoded digest must be a SHA-256 output")
}

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.NotEqual(t, s1, s2, "salts must be fresh on every call")
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("sensitive")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, len("sensitive")), b)

	// nil must be a no-op
	WipeByteArray(nil)
}
