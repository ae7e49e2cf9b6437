package plan

import "time"

// Status is the shared lifecycle vocabulary for plans and tasks.
// pending -> in_progress -> completed | failed. The final two states are
// terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Kind identifies what a plan was built to do.
type Kind string

const (
	KindGenerate Kind = "generate"
	KindRefine   Kind = "refine"
)

// ExecutionPlan is the ordered, persisted record of the steps needed to
// satisfy one generate or refine request. Plans accumulate on the owning
// project as an audit trail and are never deleted.
type ExecutionPlan struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	Goal         string    `json:"goal"`
	ModelID      string    `json:"modelId"`
	SystemPrompt string    `json:"systemPrompt,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Tasks        []Task    `json:"tasks"`
}

// TaskByID returns a pointer to the task with the given id, or nil.
func (p *ExecutionPlan) TaskByID(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// CompletedTasks returns the number of tasks with status completed.
func (p *ExecutionPlan) CompletedTasks() int {
	count := 0
	for i := range p.Tasks {
		if p.Tasks[i].Status == StatusCompleted {
			count++
		}
	}
	return count
}
