// Package filex handles the on-disk statement sink: statements downloaded
// from the banking service are written under timestamp-derived names and can
// be listed and wiped.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// nowMillis is a test seam for the statement file naming clock.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// EnsureDir creates the directory (and parents) if it does not exist and
// returns its absolute path.
func EnsureDir(dirName string) (string, error) {
	dir, err := filepath.Abs(dirName)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dirName, err)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// StatementDir is a write-only sink for downloaded statement content plus
// the listing/cleanup needed to manage it.
type StatementDir struct {
	dir string
}

// NewStatementDir ensures the directory exists and returns a sink bound to it.
func NewStatementDir(dirName string) (*StatementDir, error) {
	dir, err := EnsureDir(dirName)
	if err != nil {
		return nil, err
	}
	return &StatementDir{dir: dir}, nil
}

// Dir returns the absolute directory the sink writes into.
func (d *StatementDir) Dir() string {
	return d.dir
}

// Write stores content under "<unix-millis>.html" and returns the full path
// of the written file.
func (d *StatementDir) Write(content []byte) (string, error) {
	name := strconv.FormatInt(nowMillis(), 10) + ".html"
	path := filepath.Join(d.dir, name)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write statement %s: %w", path, err)
	}
	return path, nil
}

// List returns the names of all files currently in the statement directory.
func (d *StatementDir) List() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", d.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Clear deletes every file in the statement directory.
func (d *StatementDir) Clear() error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", d.dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(d.dir, e.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", e.Name(), err)
		}
	}
	return nil
}
