package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formahq/forma/internal/plan"
	"github.com/formahq/forma/internal/project"
	"github.com/formahq/forma/internal/tui/components"
	"github.com/formahq/forma/internal/tui/msgs"
	"github.com/formahq/forma/internal/tui/styles"
)

// pollInterval is how often the plan list re-reads project state. The
// executor writes progress through the store; this view only observes.
const pollInterval = 2 * time.Second

// planRow is one rendered plan.
type planRow struct {
	ID        string
	Kind      plan.Kind
	Status    plan.Status
	Completed int
	Total     int
	ModelName string
}

// pollTickMsg triggers a state reload.
type pollTickMsg time.Time

// PlanListModel shows a project's execution plans with live status.
type PlanListModel struct {
	store     *project.Store
	projectID string
	rows      []planRow
	spin      spinner.Model
	width     int
	height    int
}

// NewPlanListModel creates a plan list for the given project.
func NewPlanListModel(store *project.Store, projectID string) PlanListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	m := PlanListModel{
		store:     store,
		projectID: projectID,
		spin:      s,
	}
	m.rows = m.loadRows()
	return m
}

func (m PlanListModel) loadRows() []planRow {
	p, err := m.store.Load(m.projectID)
	if err != nil {
		return nil
	}

	rows := make([]planRow, 0, len(p.Plans))
	for _, pl := range p.Plans {
		row := planRow{
			ID:        pl.ID,
			Kind:      pl.Kind,
			Status:    pl.Status,
			Completed: pl.CompletedTasks(),
			Total:     len(pl.Tasks),
		}
		if model := p.ModelByID(pl.ModelID); model != nil {
			row.ModelName = model.Name
		}
		rows = append(rows, row)
	}
	return rows
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// Init implements tea.Model.
func (m PlanListModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, pollTick())
}

// Update implements tea.Model.
func (m PlanListModel) Update(msg tea.Msg) (PlanListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pollTickMsg:
		m.rows = m.loadRows()
		return m, pollTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PlanListModel) View() string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render("Execution Plans"))
	sb.WriteString("\n")

	if len(m.rows) == 0 {
		sb.WriteString(styles.SubtleStyle.Render("No plans yet. Run 'forma model generate'."))
		sb.WriteString("\n")
	}

	for _, row := range m.rows {
		status := string(row.Status)
		switch row.Status {
		case plan.StatusInProgress:
			status = m.spin.View() + " " + status
		case plan.StatusCompleted:
			status = styles.SuccessStyle.Render(status)
		case plan.StatusFailed:
			status = styles.ErrorStyle.Render(status)
		}

		bar := components.NewProgress(row.Completed, row.Total, 8)
		sb.WriteString(fmt.Sprintf("%-8s  %-16s  %s  %s\n",
			row.Kind, row.ModelName, bar.View(), status))
	}

	sb.WriteString("\n")
	bar := components.NewStatusBar()
	sb.WriteString(bar.Render(m.width, []string{"esc back", "q quit"}))

	return sb.String()
}
