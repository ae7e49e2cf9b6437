package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Forma in the current directory",
	Long:  "Creates a .forma/ folder to store projects, models, and execution plans.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)

	if store.Initialized() {
		return fmt.Errorf("forma is already initialized in this directory")
	}

	if err := store.Init(); err != nil {
		return err
	}

	fmt.Println("Initialized Forma in", project.DefaultDir)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run: forma project create <name>")
	fmt.Println("  2. Add design inputs: forma input add <project> <file>")
	fmt.Println("  3. Generate a model: forma model generate <project> <model-name>")
	return nil
}
