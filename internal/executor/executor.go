// Package executor runs execution plans: a strictly sequential walk over a
// plan's tasks with result threading, per-transition persistence, and
// fail-fast error propagation.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formahq/forma/internal/ai"
	"github.com/formahq/forma/internal/plan"
	"github.com/formahq/forma/internal/project"
)

// Store is the persistence collaborator. Each update applies a shallow merge
// of the given fields (keyed by JSON field name) onto the named entity; calls
// resolve independently, with no transaction spanning them.
type Store interface {
	LookupInputs(projectID string, ids []string) []project.DesignInput
	UpdateModel(ctx context.Context, projectID, modelID string, fields map[string]any) error
	UpdatePlan(ctx context.Context, projectID, planID string, fields map[string]any) error
	UpdateTaskInPlan(ctx context.Context, projectID, planID, taskID string, fields map[string]any) error
}

// Generator is the generation collaborator. GenerateDescription reports soft
// failures as a string starting with ai.FailurePrefix; GenerateStructuredModel
// returns errors. Any internal retry policy must be exhausted before either
// reports failure upward.
type Generator interface {
	GenerateDescription(ctx context.Context, inputs []project.DesignInput, refinementText, persona string) (string, error)
	GenerateStructuredModel(ctx context.Context, description, persona string) (*project.GeneratedModel, error)
}

// Executor orchestrates the execution of one plan at a time. It holds no
// state between invocations; all progress flows through the store.
type Executor struct {
	projectID string
	store     Store
	generator Generator
	logger    *plan.ProgressLogger
	events    Events
}

// New creates an executor for the given project.
func New(projectID string, store Store, generator Generator) *Executor {
	return &Executor{
		projectID: projectID,
		store:     store,
		generator: generator,
		events:    noopEvents{},
	}
}

// WithLogger sets a progress logger for JSONL event output.
func (e *Executor) WithLogger(l *plan.ProgressLogger) *Executor {
	e.logger = l
	return e
}

// WithEvents sets an observer for execution callbacks (display, TUI).
func (e *Executor) WithEvents(ev Events) *Executor {
	if ev != nil {
		e.events = ev
	}
	return e
}

// Start runs the plan on its own goroutine and returns a channel that
// receives the final error (or nil). Callers that only need progress can
// ignore the channel and observe state through the store; callers that need
// to react to completion (the refine flow) wait on it.
func (e *Executor) Start(ctx context.Context, p *plan.ExecutionPlan) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- e.Run(ctx, p)
	}()
	return done
}

// Run executes every task in the plan in declared order. The first task
// failure marks the task, the plan, and the target model failed and stops
// the loop; tasks after the failure are never attempted and stay pending.
func (e *Executor) Run(ctx context.Context, p *plan.ExecutionPlan) error {
	if p.ModelID == "" {
		// Fatal input error: nothing runs, no task leaves pending.
		if err := e.updatePlanStatus(ctx, p, plan.StatusFailed); err != nil {
			return err
		}
		e.logPlanFailed(p.ID, "", "plan has no target model")
		e.events.OnPlanFailed(p, nil, "plan has no target model")
		return fmt.Errorf("plan %s has no target model", p.ID)
	}

	startTime := time.Now()
	if err := e.updatePlanStatus(ctx, p, plan.StatusInProgress); err != nil {
		return err
	}
	if e.logger != nil {
		e.logger.PlanStarted(p.ID)
	}
	e.events.OnPlanStart(p)

	for i := range p.Tasks {
		task := &p.Tasks[i]

		if err := e.beginTask(ctx, p, task); err != nil {
			return err
		}
		e.events.OnTaskStart(i+1, len(p.Tasks), task)

		result, runErr := e.runTask(ctx, p, i)
		if runErr != nil {
			return e.failTask(ctx, p, task, runErr)
		}

		if err := e.completeTask(ctx, p, task, result); err != nil {
			return err
		}
		e.events.OnTaskComplete(task)
	}

	if err := e.updatePlanStatus(ctx, p, plan.StatusCompleted); err != nil {
		return err
	}
	duration := time.Since(startTime)
	if e.logger != nil {
		e.logger.PlanCompleted(p.ID, len(p.Tasks), duration)
	}
	e.events.OnPlanComplete(p, duration)
	return nil
}

// runTask dispatches one task on its kind and returns its result.
func (e *Executor) runTask(ctx context.Context, p *plan.ExecutionPlan, idx int) (any, error) {
	task := &p.Tasks[idx]

	switch task.Kind {
	case plan.TaskKindDescription:
		return e.runDescriptionTask(ctx, p, idx)
	case plan.TaskKindGeometry:
		return e.runGeometryTask(ctx, p, task)
	default:
		return nil, fmt.Errorf("unknown task kind: %s", task.Kind)
	}
}

// runDescriptionTask generates the design brief, stores it on the target
// model, and threads it into the next task's arguments.
func (e *Executor) runDescriptionTask(ctx context.Context, p *plan.ExecutionPlan, idx int) (any, error) {
	task := &p.Tasks[idx]

	inputs := e.store.LookupInputs(e.projectID, task.InputIDs())
	refinement := task.StringArg(plan.ArgRefinement)

	description, err := e.generator.GenerateDescription(ctx, inputs, refinement, p.SystemPrompt)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(description, ai.FailurePrefix) {
		// Sentinel failure string: normalize into an error so both
		// generation paths funnel into one failure branch.
		return nil, errors.New(description)
	}

	err = e.store.UpdateModel(ctx, e.projectID, p.ModelID, map[string]any{
		"description": description,
		"status":      project.ModelStatusGenerating,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update model: %w", err)
	}

	// Thread the brief into the geometry task. The builder leaves its
	// arguments empty on purpose; only the executor knows the result.
	if idx+1 < len(p.Tasks) {
		next := &p.Tasks[idx+1]
		if next.Arguments == nil {
			next.Arguments = map[string]any{}
		}
		next.Arguments[plan.ArgDescription] = description
		err = e.store.UpdateTaskInPlan(ctx, e.projectID, p.ID, next.ID, map[string]any{
			"arguments": next.Arguments,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update task arguments: %w", err)
		}
	}

	return description, nil
}

// runGeometryTask generates the structured model bundle from the brief and
// persists it onto the target model.
func (e *Executor) runGeometryTask(ctx context.Context, p *plan.ExecutionPlan, task *plan.Task) (any, error) {
	description := task.StringArg(plan.ArgDescription)
	if description == "" {
		return nil, errors.New("missing design brief from previous task")
	}

	generated, err := e.generator.GenerateStructuredModel(ctx, description, p.SystemPrompt)
	if err != nil {
		return nil, err
	}

	err = e.store.UpdateModel(ctx, e.projectID, p.ModelID, map[string]any{
		"code":            generated.Code,
		"billOfMaterials": generated.BillOfMaterials,
		"rationale":       generated.Rationale,
		"status":          project.ModelStatusCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update model: %w", err)
	}

	return generated, nil
}

// beginTask marks a task in progress and stamps startedAt.
func (e *Executor) beginTask(ctx context.Context, p *plan.ExecutionPlan, task *plan.Task) error {
	now := time.Now().UTC()
	task.Status = plan.StatusInProgress
	task.StartedAt = &now

	err := e.store.UpdateTaskInPlan(ctx, e.projectID, p.ID, task.ID, map[string]any{
		"status":    plan.StatusInProgress,
		"startedAt": now,
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if e.logger != nil {
		e.logger.TaskStarted(p.ID, task.ID)
	}
	return nil
}

// completeTask marks a task completed, stamps completedAt, and stores its
// result.
func (e *Executor) completeTask(ctx context.Context, p *plan.ExecutionPlan, task *plan.Task, result any) error {
	now := time.Now().UTC()
	task.Status = plan.StatusCompleted
	task.CompletedAt = &now
	task.Result = result

	err := e.store.UpdateTaskInPlan(ctx, e.projectID, p.ID, task.ID, map[string]any{
		"status":      plan.StatusCompleted,
		"completedAt": now,
		"result":      result,
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if e.logger != nil {
		e.logger.TaskCompleted(p.ID, task.ID)
	}
	return nil
}

// failTask records a task failure, fails the plan and the target model, and
// stops execution. Tasks after the failed one are never attempted.
func (e *Executor) failTask(ctx context.Context, p *plan.ExecutionPlan, task *plan.Task, taskErr error) error {
	now := time.Now().UTC()
	task.Status = plan.StatusFailed
	task.CompletedAt = &now
	task.Error = taskErr.Error()

	if err := e.store.UpdateTaskInPlan(ctx, e.projectID, p.ID, task.ID, map[string]any{
		"status":      plan.StatusFailed,
		"completedAt": now,
		"error":       taskErr.Error(),
	}); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if err := e.updatePlanStatus(ctx, p, plan.StatusFailed); err != nil {
		return err
	}

	reason := fmt.Sprintf("Task %q failed: %s", task.Name, taskErr.Error())
	if err := e.store.UpdateModel(ctx, e.projectID, p.ModelID, map[string]any{
		"status":        project.ModelStatusFailed,
		"failureReason": reason,
	}); err != nil {
		return fmt.Errorf("failed to update model: %w", err)
	}

	e.logPlanFailed(p.ID, task.ID, taskErr.Error())
	e.events.OnTaskFailed(task, taskErr)
	e.events.OnPlanFailed(p, task, reason)
	return fmt.Errorf("task %s failed: %w", task.ID, taskErr)
}

// updatePlanStatus persists a plan-level status transition.
func (e *Executor) updatePlanStatus(ctx context.Context, p *plan.ExecutionPlan, status plan.Status) error {
	p.Status = status
	err := e.store.UpdatePlan(ctx, e.projectID, p.ID, map[string]any{
		"status": status,
	})
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (e *Executor) logPlanFailed(planID, taskID, message string) {
	if e.logger == nil {
		return
	}
	if taskID != "" {
		e.logger.TaskFailed(planID, taskID, message)
	}
	e.logger.PlanFailed(planID, taskID, message)
}
