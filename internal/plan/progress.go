package plan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const progressLogFileName = "progress.log"

// Event type constants for progress logging.
const (
	EventPlanStarted   = "plan_started"
	EventPlanCompleted = "plan_completed"
	EventPlanFailed    = "plan_failed"
	EventTaskStarted   = "task_started"
	EventTaskCompleted = "task_completed"
	EventTaskFailed    = "task_failed"
)

// ProgressEvent represents a single progress log entry.
type ProgressEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Data      map[string]any `json:"data,omitempty"`
}

// ProgressLogger appends plan execution events to a JSON Lines file in the
// owning project's folder. One file per project; events carry the plan id.
type ProgressLogger struct {
	path string
}

// NewProgressLogger creates a progress logger for the given project
// directory.
func NewProgressLogger(projectDir string) *ProgressLogger {
	return &ProgressLogger{
		path: filepath.Join(projectDir, progressLogFileName),
	}
}

// Log appends a progress event to the log file.
func (l *ProgressLogger) Log(event string, data map[string]any) error {
	entry := ProgressEvent{
		Timestamp: time.Now(),
		Event:     event,
		Data:      data,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// PlanStarted logs a plan_started event.
func (l *ProgressLogger) PlanStarted(planID string) error {
	return l.Log(EventPlanStarted, map[string]any{
		"plan_id": planID,
	})
}

// TaskStarted logs a task_started event.
func (l *ProgressLogger) TaskStarted(planID, taskID string) error {
	return l.Log(EventTaskStarted, map[string]any{
		"plan_id": planID,
		"task_id": taskID,
	})
}

// TaskCompleted logs a task_completed event.
func (l *ProgressLogger) TaskCompleted(planID, taskID string) error {
	return l.Log(EventTaskCompleted, map[string]any{
		"plan_id": planID,
		"task_id": taskID,
	})
}

// TaskFailed logs a task_failed event with the failure message.
func (l *ProgressLogger) TaskFailed(planID, taskID, message string) error {
	return l.Log(EventTaskFailed, map[string]any{
		"plan_id": planID,
		"task_id": taskID,
		"error":   message,
	})
}

// PlanCompleted logs a plan_completed event with summary statistics.
func (l *ProgressLogger) PlanCompleted(planID string, totalTasks int, duration time.Duration) error {
	return l.Log(EventPlanCompleted, map[string]any{
		"plan_id":     planID,
		"total_tasks": totalTasks,
		"duration_ms": duration.Milliseconds(),
	})
}

// PlanFailed logs a plan_failed event naming the failing task.
func (l *ProgressLogger) PlanFailed(planID, taskID, message string) error {
	return l.Log(EventPlanFailed, map[string]any{
		"plan_id": planID,
		"task_id": taskID,
		"error":   message,
	})
}
