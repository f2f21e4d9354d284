package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  jdoe  \n"))

	got, err := GetSimpleText(r, "Service username", &out)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got)
	assert.Contains(t, out.String(), "Service username")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(r, "prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EmptyInputEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "prompt", &out)
	assert.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword("Password: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(pw))
	assert.Contains(t, out.String(), "Password: ")
}
