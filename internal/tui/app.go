// Package tui implements the interactive terminal interface.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formahq/forma/internal/project"
	"github.com/formahq/forma/internal/tui/msgs"
	"github.com/formahq/forma/internal/tui/views"
)

// View identifies which view is currently active.
type View int

const (
	ViewHome View = iota
	ViewPlans
)

// Model is the root TUI model routing between views.
type Model struct {
	store    *project.Store
	view     View
	projects views.ProjectListModel
	plans    views.PlanListModel
	width    int
	height   int
}

// NewModel creates the root model.
func NewModel(store *project.Store) Model {
	return Model{
		store:    store,
		view:     ViewHome,
		projects: views.NewProjectListModel(store),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.projects.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case msgs.GoToHomeMsg:
		m.view = ViewHome
		m.projects = views.NewProjectListModel(m.store)
		return m, m.projects.Init()

	case msgs.GoToPlansMsg:
		m.view = ViewPlans
		m.plans = views.NewPlanListModel(m.store, msg.ProjectID)
		return m, m.plans.Init()
	}

	var cmd tea.Cmd
	switch m.view {
	case ViewHome:
		m.projects, cmd = m.projects.Update(msg)
	case ViewPlans:
		m.plans, cmd = m.plans.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.view {
	case ViewPlans:
		return m.plans.View()
	default:
		return m.projects.View()
	}
}

// Run starts the TUI against the default project store.
func Run() error {
	store := project.NewStore(project.DefaultDir)
	if !store.Initialized() {
		return fmt.Errorf("no workspace found, run 'forma init' first")
	}

	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
