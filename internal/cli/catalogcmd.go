package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/catalog"
	"github.com/formahq/forma/internal/project"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the starter design catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	RunE:  runCatalogList,
}

var catalogUseCmd = &cobra.Command{
	Use:   "use <project> <entry-id>",
	Short: "Add a catalog brief to a project as a text input",
	Args:  cobra.ExactArgs(2),
	RunE:  runCatalogUse,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogUseCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	entries, err := catalog.List()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%-16s  %-30s  [%s]\n", e.ID, e.Summary, strings.Join(e.Tags, ", "))
	}
	return nil
}

func runCatalogUse(cmd *cobra.Command, args []string) error {
	entry, err := catalog.Find(args[1])
	if err != nil {
		return err
	}

	input, err := project.NewTextInput(entry.Name, entry.Brief)
	if err != nil {
		return err
	}

	store := project.NewStore(project.DefaultDir)
	if err := store.AddInput(args[0], input); err != nil {
		return err
	}

	fmt.Printf("Added catalog brief %q as input %s\n", entry.Name, input.ID)
	return nil
}
