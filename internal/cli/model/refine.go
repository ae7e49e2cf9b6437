package model

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/plan"
)

var (
	refineNotes    string
	refineInputIDs []string
	refinePersona  string
)

var refineCmd = &cobra.Command{
	Use:   "refine <project> <model>",
	Short: "Refine an existing model with change instructions",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefine,
}

func init() {
	refineCmd.Flags().StringVar(&refineNotes, "notes", "", "Refinement instructions (required)")
	refineCmd.Flags().StringSliceVar(&refineInputIDs, "inputs", nil, "Design input ids to reference (default: all)")
	refineCmd.Flags().StringVar(&refinePersona, "persona", "", "Persona preset id to apply to all generation calls")
	refineCmd.MarkFlagRequired("notes")
}

func runRefine(cmd *cobra.Command, args []string) error {
	if err := checkPrerequisites(); err != nil {
		return err
	}

	store, proj, err := loadProject(args[0])
	if err != nil {
		return err
	}

	m := findModel(proj, args[1])
	if m == nil {
		return fmt.Errorf("model not found: %s", args[1])
	}

	instruction, err := personaInstruction(refinePersona)
	if err != nil {
		return err
	}

	pl := plan.Build(plan.KindRefine, plan.BuildArgs{
		ModelID:        m.ID,
		InputIDs:       resolveInputIDs(proj, refineInputIDs),
		RefinementText: refineNotes,
	}, instruction)

	fmt.Printf("Refining model %s (%s)\n", m.Name, m.ID)
	return runPlan(cmd, store, proj, pl)
}
