package model

import (
	"testing"

	"github.com/formahq/forma/internal/project"
)

func TestCheckPrerequisites(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if err := checkPrerequisites(); err == nil {
		t.Error("expected an error without an API key")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	if err := checkPrerequisites(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestResolveInputIDs(t *testing.T) {
	p := &project.Project{
		Inputs: []project.DesignInput{
			{ID: "in-1"},
			{ID: "in-2"},
		},
	}

	// Explicit selection wins.
	ids := resolveInputIDs(p, []string{"in-2"})
	if len(ids) != 1 || ids[0] != "in-2" {
		t.Errorf("expected explicit selection, got: %v", ids)
	}

	// Defaults to every input.
	ids = resolveInputIDs(p, nil)
	if len(ids) != 2 {
		t.Errorf("expected all inputs, got: %v", ids)
	}
}

func TestFindModel(t *testing.T) {
	p := &project.Project{
		Models: []project.Model{
			{ID: "m1", Name: "Carport"},
			{ID: "m2", Name: "Shed"},
		},
	}

	if m := findModel(p, "m2"); m == nil || m.Name != "Shed" {
		t.Errorf("expected match by id, got: %v", m)
	}
	if m := findModel(p, "carport"); m == nil || m.ID != "m1" {
		t.Errorf("expected case-insensitive match by name, got: %v", m)
	}
	if m := findModel(p, "nope"); m != nil {
		t.Errorf("expected no match, got: %v", m)
	}
}

func TestPersonaInstruction(t *testing.T) {
	instruction, err := personaInstruction("structural-engineer")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if instruction == "" {
		t.Error("expected an instruction")
	}

	if _, err := personaInstruction("nope"); err == nil {
		t.Error("expected an error for unknown persona")
	}
}
