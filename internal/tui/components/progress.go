package components

import (
	"fmt"
	"strings"

	"github.com/formahq/forma/internal/tui/styles"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

// Progress renders a task progress bar like: ██░░░░ 1/3
type Progress struct {
	Completed int
	Total     int
	Width     int // character width of the bar portion
}

// NewProgress creates a progress bar for completed-of-total tasks.
func NewProgress(completed, total, width int) Progress {
	return Progress{Completed: completed, Total: total, Width: width}
}

// View returns the rendered bar with a completed/total label.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	done := min(max(p.Completed, 0), p.Total)
	filled := (done * p.Width) / p.Total

	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, p.Width-filled)
	label := fmt.Sprintf("%d/%d", done, p.Total)
	if done == p.Total {
		label = styles.SuccessStyle.Render(label)
	}

	return bar + " " + label
}
