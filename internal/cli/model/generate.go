package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/plan"
	"github.com/formahq/forma/internal/project"
)

var (
	generateInputIDs []string
	generatePersona  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <project> <model-name>",
	Short: "Generate a new model from the project's design inputs",
	Long:  `Builds and runs an execution plan that produces a design brief from the referenced inputs, then generates the model geometry, bill of materials, and rationale.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateInputIDs, "inputs", nil, "Design input ids to reference (default: all)")
	generateCmd.Flags().StringVar(&generatePersona, "persona", "", "Persona preset id to apply to all generation calls")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := checkPrerequisites(); err != nil {
		return err
	}

	store, proj, err := loadProject(args[0])
	if err != nil {
		return err
	}

	instruction, err := personaInstruction(generatePersona)
	if err != nil {
		return err
	}

	m := project.Model{
		ID:        uuid.NewString(),
		Name:      args[1],
		Status:    project.ModelStatusDraft,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.AddModel(proj.ID, m); err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	pl := plan.Build(plan.KindGenerate, plan.BuildArgs{
		ModelID:  m.ID,
		InputIDs: resolveInputIDs(proj, generateInputIDs),
	}, instruction)

	fmt.Printf("Generating model %s (%s)\n", m.Name, m.ID)
	return runPlan(cmd, store, proj, pl)
}
