package util

import (
	"strings"
	"testing"
)

func TestShortID(t *testing.T) {
	id, err := ShortID()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(id) != 6 {
		t.Errorf("expected 6 characters, got: %d", len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune(alphanumeric, r) {
			t.Errorf("unexpected character: %q", r)
		}
	}

	other, _ := ShortID()
	if id == other {
		t.Error("expected distinct ids")
	}
}

func TestTaskID(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "t01"},
		{1, "t02"},
		{9, "t10"},
		{99, "t100"},
	}
	for _, tt := range tests {
		if got := TaskID(tt.index); got != tt.want {
			t.Errorf("TaskID(%d): expected %s, got %s", tt.index, tt.want, got)
		}
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Garden Shed", "garden-shed"},
		{"my_project", "my-project"},
		{"Already-Kebab", "already-kebab"},
		{"  spaces  around  ", "spaces-around"},
		{"Symbols!@#Here", "symbolshere"},
		{"Mixed CASE_and-Stuff 2", "mixed-case-and-stuff-2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := KebabCase(tt.in); got != tt.want {
			t.Errorf("KebabCase(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
