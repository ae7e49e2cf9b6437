package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var (
	inputText string
	inputName string
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Manage design inputs",
}

var inputAddCmd = &cobra.Command{
	Use:   "add <project> [file...]",
	Short: "Add design inputs to a project",
	Long:  `Add design inputs from files (text documents, images, DXF drawings) or inline text. The input kind is derived from the file extension.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInputAdd,
}

var inputListCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List a project's design inputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runInputList,
}

func init() {
	inputAddCmd.Flags().StringVar(&inputText, "text", "", "Add inline text as a design input")
	inputAddCmd.Flags().StringVar(&inputName, "name", "note", "Name for an inline text input")

	inputCmd.AddCommand(inputAddCmd)
	inputCmd.AddCommand(inputListCmd)
}

func runInputAdd(cmd *cobra.Command, args []string) error {
	projectRef := args[0]
	files := args[1:]

	if len(files) == 0 && inputText == "" {
		return fmt.Errorf("provide input files or --text")
	}

	store := project.NewStore(project.DefaultDir)

	if inputText != "" {
		input, err := project.NewTextInput(inputName, inputText)
		if err != nil {
			return err
		}
		if err := store.AddInput(projectRef, input); err != nil {
			return err
		}
		fmt.Printf("Added %s input %s (%s)\n", input.Kind, input.Name, input.ID)
	}

	for _, file := range files {
		input, err := project.NewInputFromFile(file)
		if err != nil {
			return err
		}
		if err := store.AddInput(projectRef, input); err != nil {
			return err
		}
		fmt.Printf("Added %s input %s (%s)\n", input.Kind, input.Name, input.ID)
	}
	return nil
}

func runInputList(cmd *cobra.Command, args []string) error {
	store := project.NewStore(project.DefaultDir)
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if len(p.Inputs) == 0 {
		fmt.Println("No inputs yet. Run 'forma input add'.")
		return nil
	}

	for _, in := range p.Inputs {
		fmt.Printf("%s  %-6s  %s\n", in.ID, in.Kind, in.Name)
	}
	return nil
}
