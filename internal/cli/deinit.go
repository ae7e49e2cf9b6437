package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var deinitForce bool

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove Forma from the current directory",
	Long:  "Removes the .forma/ folder including all projects, models, and plans. This action cannot be undone.",
	RunE:  runDeinit,
}

func init() {
	deinitCmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(project.DefaultDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("forma is not initialized in this directory")
	}
	if err != nil {
		return fmt.Errorf("failed to check .forma directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf(".forma exists but is not a directory")
	}

	projectCount, totalSize, err := dirStats(project.DefaultDir)
	if err != nil {
		return fmt.Errorf("failed to analyze .forma/: %w", err)
	}

	if !deinitForce {
		fmt.Printf("This will delete .forma/ (%d projects, %s). Continue? [y/N] ", projectCount, formatSize(totalSize))

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(project.DefaultDir); err != nil {
		return fmt.Errorf("failed to remove .forma/: %w", err)
	}

	fmt.Println("Forma has been removed from this directory.")
	return nil
}

func dirStats(dir string) (projectCount int, totalSize int64, err error) {
	projectsDir := filepath.Join(dir, "projects")
	entries, readErr := os.ReadDir(projectsDir)
	if readErr == nil {
		projectCount = len(entries)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !d.IsDir() {
			if info, infoErr := d.Info(); infoErr == nil {
				totalSize += info.Size()
			}
		}
		return nil
	})
	return projectCount, totalSize, err
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
