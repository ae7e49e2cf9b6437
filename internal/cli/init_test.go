package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/formahq/forma/internal/project"
	"github.com/formahq/forma/internal/testutil"
)

func TestRunInit(t *testing.T) {
	t.Run("creates the store layout", func(t *testing.T) {
		testutil.SetupTestDir(t)

		if err := runInit(nil, nil); err != nil {
			t.Fatalf("runInit failed: %v", err)
		}

		info, err := os.Stat(filepath.Join(project.DefaultDir, "projects"))
		if err != nil {
			t.Fatalf("expected projects directory, got: %v", err)
		}
		if !info.IsDir() {
			t.Error("expected projects to be a directory")
		}
	})

	t.Run("fails when already initialized", func(t *testing.T) {
		testutil.SetupTestDir(t)

		if err := runInit(nil, nil); err != nil {
			t.Fatalf("runInit failed: %v", err)
		}
		if err := runInit(nil, nil); err == nil {
			t.Error("expected an error on second init")
		}
	})
}
