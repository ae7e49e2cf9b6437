package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/persona"
)

var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "List persona presets",
}

var personaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in persona presets",
	RunE:  runPersonaList,
}

func init() {
	personaCmd.AddCommand(personaListCmd)
}

func runPersonaList(cmd *cobra.Command, args []string) error {
	presets, err := persona.Defaults()
	if err != nil {
		return err
	}

	for _, p := range presets {
		fmt.Printf("%-22s  %s\n", p.ID, p.Description)
	}
	return nil
}
