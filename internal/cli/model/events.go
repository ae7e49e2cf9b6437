package model

import (
	"time"

	"github.com/formahq/forma/internal/display"
	"github.com/formahq/forma/internal/executor"
	"github.com/formahq/forma/internal/plan"
)

// displayEvents bridges executor callbacks onto the terminal status line.
type displayEvents struct {
	disp *display.Display
}

func newDisplayEvents(d *display.Display) executor.Events {
	return &displayEvents{disp: d}
}

func (e *displayEvents) OnPlanStart(p *plan.ExecutionPlan) {
	e.disp.UpdateStatus(display.StatusRunning)
}

func (e *displayEvents) OnTaskStart(taskNum, total int, task *plan.Task) {
	e.disp.UpdateTask(taskNum, total, task.ID, task.Name)
}

func (e *displayEvents) OnTaskComplete(task *plan.Task) {
	e.disp.PrintAbove("✓ %s", task.Name)
}

func (e *displayEvents) OnTaskFailed(task *plan.Task, err error) {
	e.disp.PrintAbove("✗ %s: %v", task.Name, err)
}

func (e *displayEvents) OnPlanComplete(p *plan.ExecutionPlan, duration time.Duration) {
	e.disp.UpdateStatus(display.StatusCompleted)
}

func (e *displayEvents) OnPlanFailed(p *plan.ExecutionPlan, task *plan.Task, reason string) {
	e.disp.UpdateStatus(display.StatusFailed)
}
