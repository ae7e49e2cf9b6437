package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formahq/forma/internal/project"
	"github.com/formahq/forma/internal/tui/components"
	"github.com/formahq/forma/internal/tui/msgs"
	"github.com/formahq/forma/internal/tui/styles"
)

// ProjectSummary contains summary information about a project for display.
type ProjectSummary struct {
	ID     string
	Name   string
	Inputs int
	Models int
	Plans  int
}

// ProjectListModel is the model for the project selection view.
type ProjectListModel struct {
	store    *project.Store
	projects []ProjectSummary
	cursor   int
	width    int
	height   int
}

// NewProjectListModel creates a project list backed by the given store.
func NewProjectListModel(store *project.Store) ProjectListModel {
	m := ProjectListModel{store: store}
	m.projects = m.loadProjects()
	return m
}

func (m ProjectListModel) loadProjects() []ProjectSummary {
	var summaries []ProjectSummary

	projects, err := m.store.List()
	if err != nil {
		return summaries
	}

	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{
			ID:     p.ID,
			Name:   p.Name,
			Inputs: len(p.Inputs),
			Models: len(p.Models),
			Plans:  len(p.Plans),
		})
	}
	return summaries
}

// Init implements tea.Model.
func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case "r":
			m.projects = m.loadProjects()
		case "enter":
			if len(m.projects) > 0 {
				id := m.projects[m.cursor].ID
				return m, func() tea.Msg { return msgs.GoToPlansMsg{ProjectID: id} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ProjectListModel) View() string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render("Projects"))
	sb.WriteString("\n")

	if len(m.projects) == 0 {
		sb.WriteString(styles.SubtleStyle.Render("No projects yet. Run 'forma project create <name>'."))
		sb.WriteString("\n")
	}

	for i, p := range m.projects {
		line := fmt.Sprintf("%s  %-20s  %d inputs, %d models, %d plans",
			p.ID, p.Name, p.Inputs, p.Models, p.Plans)
		if i == m.cursor {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	bar := components.NewStatusBar()
	sb.WriteString(bar.Render(m.width, []string{"↑/↓ move", "enter plans", "r refresh", "q quit"}))

	return sb.String()
}
