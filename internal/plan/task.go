package plan

import "time"

// TaskKind identifies which generation step a task performs. It is set once
// by the builder and is the only thing the executor dispatches on; task
// names are display labels.
type TaskKind string

const (
	// TaskKindDescription produces a textual technical brief from the
	// referenced design inputs.
	TaskKindDescription TaskKind = "description"

	// TaskKindGeometry produces the structured model artifact (code, bill
	// of materials, rationale) from the brief.
	TaskKindGeometry TaskKind = "geometry"
)

// Task is one unit of work within an execution plan. Tasks are created
// pending by the builder and mutated exclusively by the executor during a
// single sequential pass.
type Task struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Kind        TaskKind       `json:"kind"`
	ToolName    string         `json:"toolName"`
	Status      Status         `json:"status"`
	Arguments   map[string]any `json:"arguments"`
	Result      any            `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

// Argument keys used to thread data between tasks.
const (
	// ArgInputIDs lists the design input ids a description task reads.
	ArgInputIDs = "inputIds"

	// ArgRefinement carries free-text refinement instructions on refine
	// plans.
	ArgRefinement = "refinementText"

	// ArgDescription is filled in by the executor with the description
	// task's result before the geometry task runs. The builder never
	// populates it.
	ArgDescription = "description"
)

// InputIDs returns the design input ids referenced by this task's arguments.
func (t *Task) InputIDs() []string {
	raw, ok := t.Arguments[ArgInputIDs]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		// Arguments round-trip through JSON, which turns string slices
		// into []any.
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				ids = append(ids, s)
			}
		}
		return ids
	}
	return nil
}

// StringArg returns the named argument as a string, or "" if absent.
func (t *Task) StringArg(key string) string {
	if s, ok := t.Arguments[key].(string); ok {
		return s
	}
	return ""
}
