package persona

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	presets, err := Defaults()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(presets) == 0 {
		t.Fatal("expected built-in presets")
	}
	for _, p := range presets {
		if p.ID == "" || p.Name == "" || p.Instruction == "" {
			t.Errorf("preset %q missing fields: %+v", p.ID, p)
		}
	}
}

func TestFind(t *testing.T) {
	p, err := Find("structural-engineer")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.ID != "structural-engineer" {
		t.Errorf("unexpected preset: %s", p.ID)
	}

	if _, err := Find("nope"); err == nil {
		t.Error("expected an error for unknown persona")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	content := `personas:
  - id: minimalist
    name: Minimalist
    description: Keep it simple
    instruction: Prefer the fewest parts possible.
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	presets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(presets) != 1 || presets[0].ID != "minimalist" {
		t.Errorf("unexpected presets: %+v", presets)
	}
}

func TestLoadFile_MissingInstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	content := `personas:
  - id: broken
    name: Broken
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for preset without instruction")
	}
}
