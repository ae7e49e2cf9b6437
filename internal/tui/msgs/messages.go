// Package msgs defines shared message types for TUI view transitions.
package msgs

// GoToHomeMsg signals transition to the project list view.
type GoToHomeMsg struct{}

// GoToPlansMsg signals transition to the plan list for a project.
type GoToPlansMsg struct {
	ProjectID string
}
