package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formahq/forma/internal/project"
	"github.com/formahq/forma/internal/testutil"
	"github.com/formahq/forma/internal/tui/msgs"
)

func newTestStore(t *testing.T) *project.Store {
	t.Helper()
	testutil.SetupTestDir(t)

	s := project.NewStore(project.DefaultDir)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return s
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProjectList_Empty(t *testing.T) {
	s := newTestStore(t)

	m := NewProjectListModel(s)
	if !strings.Contains(m.View(), "No projects yet") {
		t.Error("expected empty-state hint")
	}
}

func TestProjectList_ShowsProjects(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("Carport"); err != nil {
		t.Fatalf("create: %v", err)
	}

	m := NewProjectListModel(s)
	if !strings.Contains(m.View(), "Carport") {
		t.Error("expected project name in view")
	}
}

func TestProjectList_CursorNavigation(t *testing.T) {
	s := newTestStore(t)
	s.Create("One")
	s.Create("Two")

	m := NewProjectListModel(s)
	if m.cursor != 0 {
		t.Fatalf("expected cursor at 0, got: %d", m.cursor)
	}

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1, got: %d", m.cursor)
	}
	// Does not move past the end.
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got: %d", m.cursor)
	}
	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got: %d", m.cursor)
	}
}

func TestProjectList_EnterOpensPlans(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.Create("One")

	m := NewProjectListModel(s)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg, ok := cmd().(msgs.GoToPlansMsg)
	if !ok {
		t.Fatalf("expected GoToPlansMsg, got: %T", cmd())
	}
	if msg.ProjectID != p.ID {
		t.Errorf("expected project id %s, got: %s", p.ID, msg.ProjectID)
	}
}

func TestProjectList_Refresh(t *testing.T) {
	s := newTestStore(t)

	m := NewProjectListModel(s)
	if len(m.projects) != 0 {
		t.Fatalf("expected no projects, got: %d", len(m.projects))
	}

	s.Create("Late Arrival")
	m, _ = m.Update(keyMsg("r"))
	if len(m.projects) != 1 {
		t.Errorf("expected refreshed list, got: %d", len(m.projects))
	}
}
