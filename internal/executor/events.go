package executor

import (
	"time"

	"github.com/formahq/forma/internal/plan"
)

// Events receives callbacks during plan execution.
// Implement this interface in the display or TUI layer to receive updates.
type Events interface {
	// OnPlanStart is called once, before the first task.
	OnPlanStart(p *plan.ExecutionPlan)

	// OnTaskStart is called when a task begins execution.
	OnTaskStart(taskNum, total int, task *plan.Task)

	// OnTaskComplete is called when a task succeeds.
	OnTaskComplete(task *plan.Task)

	// OnTaskFailed is called when a task fails.
	OnTaskFailed(task *plan.Task, err error)

	// OnPlanComplete is called when all tasks finish successfully.
	OnPlanComplete(p *plan.ExecutionPlan, duration time.Duration)

	// OnPlanFailed is called when the plan fails. task is nil when the
	// plan failed its precondition check before any task ran.
	OnPlanFailed(p *plan.ExecutionPlan, task *plan.Task, reason string)
}

// noopEvents is the default observer.
type noopEvents struct{}

func (noopEvents) OnPlanStart(*plan.ExecutionPlan)                    {}
func (noopEvents) OnTaskStart(int, int, *plan.Task)                   {}
func (noopEvents) OnTaskComplete(*plan.Task)                          {}
func (noopEvents) OnTaskFailed(*plan.Task, error)                     {}
func (noopEvents) OnPlanComplete(*plan.ExecutionPlan, time.Duration)  {}
func (noopEvents) OnPlanFailed(*plan.ExecutionPlan, *plan.Task, string) {}
