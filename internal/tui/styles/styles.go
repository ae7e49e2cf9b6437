// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	accentColor    = lipgloss.Color("#2D9CDB") // Blue accent
	secondaryColor = lipgloss.Color("#808080") // Gray for secondary text
	successColor   = lipgloss.Color("#27AE60") // Green for success
	errorColor     = lipgloss.Color("#EB5757") // Red for errors

	// TitleStyle for view headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	// SubtleStyle for hints and empty states
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for the cursor row in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// StatusBarStyle for the bottom help line
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	// HelpKeyStyle for key names inside the help line
	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true)

	// SuccessStyle for completed states
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for failed states
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
