package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Inspect execution plans",
}

var planListCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List a project's execution plans",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanList,
}

var planShowCmd = &cobra.Command{
	Use:   "show <project> <plan-id>",
	Short: "Show an execution plan's tasks and statuses",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlanShow,
}

func init() {
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
}

func runPlanList(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if len(p.Plans) == 0 {
		fmt.Println("No plans yet.")
		return nil
	}

	for _, pl := range p.Plans {
		fmt.Printf("%s  %-8s  %-11s  %d/%d tasks  %s\n",
			pl.ID, pl.Kind, pl.Status, pl.CompletedTasks(), len(pl.Tasks),
			pl.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	pl := p.PlanByID(args[1])
	if pl == nil {
		return fmt.Errorf("plan not found: %s", args[1])
	}

	fmt.Printf("Plan: %s\nKind: %s\nGoal: %s\nModel: %s\nStatus: %s\n\n",
		pl.ID, pl.Kind, pl.Goal, pl.ModelID, pl.Status)

	for _, t := range pl.Tasks {
		fmt.Printf("%s  %-11s  %s (%s)\n", t.ID, t.Status, t.Name, t.ToolName)
		if t.Error != "" {
			fmt.Printf("      error: %s\n", t.Error)
		}
	}
	return nil
}
