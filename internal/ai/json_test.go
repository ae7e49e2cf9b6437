package ai

import (
	"strings"
	"testing"
)

func TestExtractJSON_DirectObject(t *testing.T) {
	got, err := extractJSON([]byte(`{"code": "cube();"}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(got) != `{"code": "cube();"}` {
		t.Errorf("unexpected result: %s", got)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	input := "```json\n{\"code\": \"cube();\"}\n```"
	got, err := extractJSON([]byte(input))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(got) != `{"code": "cube();"}` {
		t.Errorf("unexpected result: %s", got)
	}
}

func TestExtractJSON_PlainFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"
	got, err := extractJSON([]byte(input))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(got) != `{"a": 1}` {
		t.Errorf("unexpected result: %s", got)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	input := `Here is the model you asked for:

{"code": "cube();", "rationale": "simple"}

Let me know if you need changes.`
	got, err := extractJSON([]byte(input))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.HasPrefix(string(got), `{"code"`) {
		t.Errorf("unexpected result: %s", got)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	if _, err := extractJSON([]byte("no json here")); err == nil {
		t.Error("expected an error")
	}
}

func TestExtractJSON_InvalidObject(t *testing.T) {
	if _, err := extractJSON([]byte(`{"broken": `)); err == nil {
		t.Error("expected an error")
	}
}

func TestStripMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {} \n", "{}"},
	}
	for _, tt := range tests {
		if got := stripMarkdownCodeBlocks(tt.in); got != tt.want {
			t.Errorf("strip(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("expected untouched string, got: %q", got)
	}

	got := truncate(strings.Repeat("x", 50), 10)
	if !strings.HasPrefix(got, strings.Repeat("x", 10)) {
		t.Errorf("expected 10-byte prefix, got: %q", got)
	}
	if !strings.Contains(got, "truncated") {
		t.Errorf("expected truncation marker, got: %q", got)
	}
}
