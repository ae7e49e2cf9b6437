package project

import (
	"time"

	"github.com/formahq/forma/internal/plan"
)

// Project is the unit of persistence: a named workspace holding design
// inputs, the models generated from them, and the execution plans that
// produced those models.
type Project struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	CreatedAt time.Time            `json:"createdAt"`
	Inputs    []DesignInput        `json:"inputs"`
	Models    []Model              `json:"models"`
	Plans     []plan.ExecutionPlan `json:"plans"`
}

// InputByID returns the design input with the given id, or nil.
func (p *Project) InputByID(id string) *DesignInput {
	for i := range p.Inputs {
		if p.Inputs[i].ID == id {
			return &p.Inputs[i]
		}
	}
	return nil
}

// ModelByID returns the model with the given id, or nil.
func (p *Project) ModelByID(id string) *Model {
	for i := range p.Models {
		if p.Models[i].ID == id {
			return &p.Models[i]
		}
	}
	return nil
}

// PlanByID returns the execution plan with the given id, or nil.
func (p *Project) PlanByID(id string) *plan.ExecutionPlan {
	for i := range p.Plans {
		if p.Plans[i].ID == id {
			return &p.Plans[i]
		}
	}
	return nil
}
