package components

import (
	"strings"

	"github.com/formahq/forma/internal/tui/styles"
)

// StatusBar renders the bottom help line: key hints separated by dots,
// padded to the terminal width.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the help line for the given width. Each item is a
// "key description" pair; the key part is emphasized.
func (s StatusBar) Render(width int, items []string) string {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		key, desc, ok := strings.Cut(item, " ")
		if !ok {
			rendered = append(rendered, item)
			continue
		}
		rendered = append(rendered, styles.HelpKeyStyle.Render(key)+" "+desc)
	}

	return styles.StatusBarStyle.Width(width).Render(strings.Join(rendered, " · "))
}
