package project

import "time"

// ModelStatus tracks a model artifact through generation.
type ModelStatus string

const (
	ModelStatusDraft      ModelStatus = "draft"
	ModelStatusGenerating ModelStatus = "generating"
	ModelStatusCompleted  ModelStatus = "completed"
	ModelStatusFailed     ModelStatus = "failed"
)

// BOMItem is one line of a model's bill of materials.
type BOMItem struct {
	Item          string `json:"item"`
	Quantity      string `json:"quantity"`
	Specification string `json:"specification,omitempty"`
}

// Model is the artifact a plan produces or updates: a technical description,
// renderable parametric code, a bill of materials, and the engineering
// rationale behind the design.
type Model struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Status          ModelStatus `json:"status"`
	Description     string      `json:"description,omitempty"`
	Code            string      `json:"code,omitempty"`
	BillOfMaterials []BOMItem   `json:"billOfMaterials,omitempty"`
	Rationale       string      `json:"rationale,omitempty"`
	FailureReason   string      `json:"failureReason,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// GeneratedModel is the structured bundle returned by the geometry
// generation step.
type GeneratedModel struct {
	Code            string    `json:"code"`
	BillOfMaterials []BOMItem `json:"billOfMaterials"`
	Rationale       string    `json:"rationale"`
}
