package project

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestNewTextInput(t *testing.T) {
	in, err := NewTextInput("brief", "a carport for two cars")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if in.Kind != InputKindText {
		t.Errorf("expected text kind, got: %s", in.Kind)
	}
	if in.ID == "" {
		t.Error("expected an id")
	}
	if in.Content != "a carport for two cars" {
		t.Errorf("unexpected content: %s", in.Content)
	}
	if in.AddedAt.IsZero() {
		t.Error("expected addedAt stamped")
	}
}

func TestNewInputFromFile_KindDerivation(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		filename  string
		content   []byte
		wantKind  InputKind
		wantMedia string
	}{
		{"notes.txt", []byte("some notes"), InputKindText, ""},
		{"floor.dxf", []byte("0\nSECTION"), InputKindDXF, ""},
		{"sketch.png", []byte{0x89, 0x50, 0x4E, 0x47}, InputKindImage, "image/png"},
		{"photo.JPG", []byte{0xFF, 0xD8}, InputKindImage, "image/jpeg"},
		{"unknown.xyz", []byte("data"), InputKindText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.filename)
			if err := os.WriteFile(path, tt.content, 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			in, err := NewInputFromFile(path)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if in.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got: %s", tt.wantKind, in.Kind)
			}
			if in.MediaType != tt.wantMedia {
				t.Errorf("expected media type %q, got: %q", tt.wantMedia, in.MediaType)
			}
			if in.Name != tt.filename {
				t.Errorf("expected name %s, got: %s", tt.filename, in.Name)
			}

			if tt.wantKind == InputKindImage {
				decoded, err := base64.StdEncoding.DecodeString(in.Content)
				if err != nil {
					t.Fatalf("expected base64 content: %v", err)
				}
				if string(decoded) != string(tt.content) {
					t.Error("expected decoded content to match the file")
				}
			} else if in.Content != string(tt.content) {
				t.Error("expected verbatim content")
			}
		})
	}
}

func TestNewInputFromFile_MissingFile(t *testing.T) {
	if _, err := NewInputFromFile("/does/not/exist.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
