package components

import (
	"strings"
	"testing"
)

func TestProgress_View(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		wantBar   string
		wantLabel string
	}{
		{"none done", 0, 2, "░░░░", "0/2"},
		{"half done", 1, 2, "██░░", "1/2"},
		{"all done", 2, 2, "████", "2/2"},
		{"clamps over", 5, 2, "████", "2/2"},
		{"clamps under", -1, 2, "░░░░", "0/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProgress(tt.completed, tt.total, 4).View()
			if !strings.HasPrefix(got, tt.wantBar) {
				t.Errorf("expected bar %q, got %q", tt.wantBar, got)
			}
			if !strings.Contains(got, tt.wantLabel) {
				t.Errorf("expected label %q, got %q", tt.wantLabel, got)
			}
		})
	}
}

func TestProgress_ViewZeroTotal(t *testing.T) {
	if got := NewProgress(0, 0, 4).View(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStatusBar_Render(t *testing.T) {
	bar := NewStatusBar()

	out := bar.Render(80, []string{"esc back", "q quit"})
	if !strings.Contains(out, "esc back") || !strings.Contains(out, "q quit") {
		t.Errorf("expected help items in output, got: %q", out)
	}
}

func TestStatusBar_RenderEmpty(t *testing.T) {
	bar := NewStatusBar()
	// Must not panic with no items.
	_ = bar.Render(40, nil)
}
