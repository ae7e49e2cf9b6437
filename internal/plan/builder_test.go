package plan

import (
	"encoding/json"
	"testing"
)

func TestBuild_GeneratePlan(t *testing.T) {
	p := Build(KindGenerate, BuildArgs{
		ModelID:  "model-1",
		InputIDs: []string{"in-1", "in-2"},
	}, "persona text")

	if p.ID == "" {
		t.Error("expected a plan id")
	}
	if p.Kind != KindGenerate {
		t.Errorf("expected kind generate, got: %s", p.Kind)
	}
	if p.Status != StatusPending {
		t.Errorf("expected pending plan, got: %s", p.Status)
	}
	if p.ModelID != "model-1" {
		t.Errorf("expected model id carried, got: %s", p.ModelID)
	}
	if p.SystemPrompt != "persona text" {
		t.Errorf("expected system prompt carried, got: %s", p.SystemPrompt)
	}
	if p.Goal == "" {
		t.Error("expected a goal sentence")
	}

	if len(p.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got: %d", len(p.Tasks))
	}

	brief := p.Tasks[0]
	if brief.ID != "t01" {
		t.Errorf("expected task id t01, got: %s", brief.ID)
	}
	if brief.Kind != TaskKindDescription {
		t.Errorf("expected description kind, got: %s", brief.Kind)
	}
	if brief.Status != StatusPending {
		t.Errorf("expected pending task, got: %s", brief.Status)
	}
	if brief.ToolName != ToolInitialGeneration {
		t.Errorf("expected tool %s, got: %s", ToolInitialGeneration, brief.ToolName)
	}
	ids := brief.InputIDs()
	if len(ids) != 2 || ids[0] != "in-1" || ids[1] != "in-2" {
		t.Errorf("expected input ids carried, got: %v", ids)
	}
	if _, ok := brief.Arguments[ArgRefinement]; ok {
		t.Error("generate plans must not carry refinement text")
	}

	geometry := p.Tasks[1]
	if geometry.ID != "t02" {
		t.Errorf("expected task id t02, got: %s", geometry.ID)
	}
	if geometry.Kind != TaskKindGeometry {
		t.Errorf("expected geometry kind, got: %s", geometry.Kind)
	}
	if len(geometry.Arguments) != 0 {
		t.Errorf("expected empty geometry arguments, got: %v", geometry.Arguments)
	}
}

func TestBuild_RefinePlan(t *testing.T) {
	p := Build(KindRefine, BuildArgs{
		ModelID:        "model-1",
		InputIDs:       []string{"in-1"},
		RefinementText: "add cross bracing",
	}, "")

	if p.Kind != KindRefine {
		t.Errorf("expected kind refine, got: %s", p.Kind)
	}
	if len(p.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got: %d", len(p.Tasks))
	}
	if p.Tasks[0].ToolName != ToolModelRefinement {
		t.Errorf("expected tool %s, got: %s", ToolModelRefinement, p.Tasks[0].ToolName)
	}
	if got := p.Tasks[0].StringArg(ArgRefinement); got != "add cross bracing" {
		t.Errorf("expected refinement text on brief task, got: %q", got)
	}
}

func TestBuild_DistinctGoalsPerKind(t *testing.T) {
	gen := Build(KindGenerate, BuildArgs{ModelID: "m"}, "")
	ref := Build(KindRefine, BuildArgs{ModelID: "m"}, "")
	if gen.Goal == ref.Goal {
		t.Error("expected distinct goals for generate and refine")
	}
}

func TestBuild_UnsupportedKind(t *testing.T) {
	p := Build(Kind("analyze"), BuildArgs{ModelID: "m"}, "")
	if p.Goal != "" {
		t.Errorf("expected empty goal, got: %q", p.Goal)
	}
	if len(p.Tasks) != 0 {
		t.Errorf("expected no tasks, got: %d", len(p.Tasks))
	}
}

func TestTask_InputIDsAfterJSONRoundTrip(t *testing.T) {
	p := Build(KindGenerate, BuildArgs{ModelID: "m", InputIDs: []string{"a", "b"}}, "")

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var loaded ExecutionPlan
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ids := loaded.Tasks[0].InputIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("expected input ids to survive the round trip, got: %v", ids)
	}
}

func TestExecutionPlan_TaskByID(t *testing.T) {
	p := Build(KindGenerate, BuildArgs{ModelID: "m"}, "")

	task := p.TaskByID("t02")
	if task == nil {
		t.Fatal("expected to find task t02")
	}
	if task.Kind != TaskKindGeometry {
		t.Errorf("expected geometry task, got: %s", task.Kind)
	}
	if p.TaskByID("t99") != nil {
		t.Error("expected nil for unknown task id")
	}
}

func TestExecutionPlan_CompletedTasks(t *testing.T) {
	p := Build(KindGenerate, BuildArgs{ModelID: "m"}, "")
	if got := p.CompletedTasks(); got != 0 {
		t.Errorf("expected 0 completed, got: %d", got)
	}
	p.Tasks[0].Status = StatusCompleted
	if got := p.CompletedTasks(); got != 1 {
		t.Errorf("expected 1 completed, got: %d", got)
	}
}
