// Package model implements the model generate/refine/list commands: the
// caller side of the plan builder + plan executor contract.
package model

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/ai"
	"github.com/formahq/forma/internal/display"
	"github.com/formahq/forma/internal/executor"
	"github.com/formahq/forma/internal/persona"
	"github.com/formahq/forma/internal/plan"
	"github.com/formahq/forma/internal/project"
)

// ModelCmd is the parent command for model-related subcommands.
var ModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Generate, refine, and inspect models",
}

func init() {
	ModelCmd.AddCommand(generateCmd)
	ModelCmd.AddCommand(refineCmd)
	ModelCmd.AddCommand(listCmd)
	ModelCmd.AddCommand(showCmd)
}

// personaInstruction resolves a persona preset id to its instruction text.
// An empty id means no persona.
func personaInstruction(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	preset, err := persona.Find(id)
	if err != nil {
		return "", err
	}
	return preset.Instruction, nil
}

// runPlan persists the plan on the project and executes it to completion,
// rendering a live status line. The executor runs on its own goroutine and
// communicates progress through the store; this caller attaches to the done
// channel because the CLI reports the final outcome.
func runPlan(cmd *cobra.Command, store *project.Store, proj *project.Project, pl *plan.ExecutionPlan) error {
	if err := store.AddPlan(proj.ID, pl); err != nil {
		return fmt.Errorf("failed to persist plan: %w", err)
	}

	client, err := ai.NewClient(ai.Config{})
	if err != nil {
		return err
	}

	dir, err := store.Dir(proj.ID)
	if err != nil {
		return err
	}

	lock := project.NewRunLock(dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	disp := display.New(os.Stdout)
	disp.Start()
	defer disp.Stop()

	exec := executor.New(proj.ID, store, client).
		WithLogger(plan.NewProgressLogger(dir)).
		WithEvents(newDisplayEvents(disp))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	done := exec.Start(ctx, pl)
	err = <-done
	disp.Stop()

	if err != nil {
		fmt.Printf("\nPlan failed: %v\n", err)
		fmt.Println("Re-run the command to try again with a fresh plan.")
		return nil
	}

	// Re-read the final artifact; the executor communicates results only
	// through the store.
	updated, loadErr := store.Load(proj.ID)
	if loadErr != nil {
		return loadErr
	}
	m := updated.ModelByID(pl.ModelID)
	if m == nil {
		return fmt.Errorf("model not found after execution: %s", pl.ModelID)
	}

	fmt.Printf("\nModel %s %s.\n", m.Name, m.Status)
	if m.Description != "" {
		fmt.Printf("\n%s\n", m.Description)
	}
	if len(m.BillOfMaterials) > 0 {
		fmt.Printf("\nBill of materials (%d items):\n", len(m.BillOfMaterials))
		for _, item := range m.BillOfMaterials {
			fmt.Printf("  %-8s %s\n", item.Quantity, item.Item)
		}
	}
	return nil
}

// loadProject loads the project and checks initialization.
func loadProject(ref string) (*project.Store, *project.Project, error) {
	store := project.NewStore(project.DefaultDir)
	if !store.Initialized() {
		return nil, nil, fmt.Errorf("forma is not initialized. Run 'forma init' first")
	}
	p, err := store.Load(ref)
	if err != nil {
		return nil, nil, err
	}
	return store, p, nil
}

// resolveInputIDs returns the requested input ids, defaulting to all of the
// project's inputs when none were named.
func resolveInputIDs(p *project.Project, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	ids := make([]string, 0, len(p.Inputs))
	for _, in := range p.Inputs {
		ids = append(ids, in.ID)
	}
	return ids
}
