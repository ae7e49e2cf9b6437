package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/formahq/forma/internal/util"
)

// Tool names carried on tasks for observability. The executor dispatches on
// Task.Kind, never on these labels.
const (
	ToolInitialGeneration = "initial-model-generation"
	ToolModelRefinement   = "model-refinement"
)

// Fixed goal sentences per plan kind. Display-only; callers distinguish plan
// types via ExecutionPlan.Kind.
const (
	goalGenerate = "Generate a new structural model from the selected design inputs"
	goalRefine   = "Refine the existing structural model per the requested changes"
)

// BuildArgs carries the caller-supplied inputs for a new plan.
type BuildArgs struct {
	// ModelID identifies the artifact the plan creates or refines.
	// Mandatory for execution; the builder does not validate it.
	ModelID string

	// InputIDs references the design inputs the brief is generated from.
	InputIDs []string

	// RefinementText holds free-text change instructions for refine plans.
	RefinementText string
}

// Build translates a goal plus arguments into a ready-to-persist execution
// plan: a brief task carrying the input references, then a geometry task
// whose arguments are filled in at run time from the brief's result.
//
// Build is pure and cannot fail. An unsupported kind yields a plan with an
// empty goal and no tasks; callers are expected to pass only KindGenerate or
// KindRefine.
func Build(kind Kind, args BuildArgs, systemPrompt string) *ExecutionPlan {
	p := &ExecutionPlan{
		ID:           uuid.NewString(),
		Kind:         kind,
		ModelID:      args.ModelID,
		SystemPrompt: systemPrompt,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	tool := ""
	switch kind {
	case KindGenerate:
		p.Goal = goalGenerate
		tool = ToolInitialGeneration
	case KindRefine:
		p.Goal = goalRefine
		tool = ToolModelRefinement
	default:
		return p
	}

	briefArgs := map[string]any{
		ArgInputIDs: args.InputIDs,
	}
	if kind == KindRefine {
		briefArgs[ArgRefinement] = args.RefinementText
	}

	p.Tasks = []Task{
		{
			ID:          util.TaskID(0),
			Name:        "Design Brief",
			Description: "Produce a technical description of the model from the referenced design inputs",
			Kind:        TaskKindDescription,
			ToolName:    tool,
			Status:      StatusPending,
			Arguments:   briefArgs,
		},
		{
			ID:          util.TaskID(1),
			Name:        "Geometry, Materials & Code",
			Description: "Generate renderable model code, a bill of materials, and an engineering rationale from the brief",
			Kind:        TaskKindGeometry,
			ToolName:    tool,
			Status:      StatusPending,
			Arguments:   map[string]any{},
		},
	}

	return p
}
