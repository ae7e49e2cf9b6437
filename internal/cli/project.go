package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage design projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectList,
}

func init() {
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)
	if !store.Initialized() {
		return fmt.Errorf("forma is not initialized. Run 'forma init' first")
	}

	p, err := store.Create(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)
	projects, err := store.List()
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet. Run 'forma project create <name>'.")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("%s  %-20s  %d inputs, %d models, %d plans\n",
			p.ID, p.Name, len(p.Inputs), len(p.Models), len(p.Plans))
	}
	return nil
}
