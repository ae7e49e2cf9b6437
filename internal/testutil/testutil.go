// Package testutil provides shared helpers for forma's tests.
package testutil

import (
	"path/filepath"
	"testing"
)

// SetupTestDir creates a temp directory and makes it the working directory
// for the rest of the test. Symlinks are resolved first so path comparisons
// work on macOS, where TMPDIR lives behind /var -> /private/var.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	t.Chdir(dir)
	return dir
}
