package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	dir, err := EnsureDir(filepath.Join(base, "statements"))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStatementDir_WriteUsesTimestampName(t *testing.T) {
	d, err := NewStatementDir(t.TempDir())
	require.NoError(t, err)

	orig := nowMillis
	nowMillis = func() int64 { return 1234567890 }
	t.Cleanup(func() { nowMillis = orig })

	path, err := d.Write([]byte("<html>statement</html>"))
	require.NoError(t, err)
	assert.Equal(t, "1234567890.html", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>statement</html>", string(content))
}

func TestStatementDir_ListAndClear(t *testing.T) {
	d, err := NewStatementDir(t.TempDir())
	require.NoError(t, err)

	_, err = d.Write([]byte("a"))
	require.NoError(t, err)

	names, err := d.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)

	require.NoError(t, d.Clear())

	names, err = d.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStatementDir_ClearEmpty(t *testing.T) {
	d, err := NewStatementDir(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, d.Clear())
}
