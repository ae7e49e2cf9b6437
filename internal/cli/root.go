package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/cli/model"
	"github.com/formahq/forma/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "forma",
	Short:   "Design assistant for AI-generated structural models",
	Long:    `Forma assembles projects from design inputs (text, images, DXF drawings) and runs execution plans that generate and refine 3D structural models through an AI backend.`,
	Version: version.Version,
}

func init() {
	// A .env file in the working directory may supply ANTHROPIC_API_KEY.
	_ = godotenv.Load()

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(model.ModelCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(personaCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
