package model

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formahq/forma/internal/project"
)

var listCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List a project's models",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <project> <model>",
	Short: "Show a model's description, code, and bill of materials",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func runList(cmd *cobra.Command, args []string) error {
	_, proj, err := loadProject(args[0])
	if err != nil {
		return err
	}

	if len(proj.Models) == 0 {
		fmt.Println("No models yet. Run 'forma model generate'.")
		return nil
	}

	for _, m := range proj.Models {
		fmt.Printf("%s  %-10s  %s\n", m.ID, m.Status, m.Name)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	_, proj, err := loadProject(args[0])
	if err != nil {
		return err
	}

	m := findModel(proj, args[1])
	if m == nil {
		return fmt.Errorf("model not found: %s", args[1])
	}

	fmt.Printf("Model: %s (%s)\nStatus: %s\n", m.Name, m.ID, m.Status)
	if m.FailureReason != "" {
		fmt.Printf("Failure: %s\n", m.FailureReason)
	}
	if m.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", m.Description)
	}
	if len(m.BillOfMaterials) > 0 {
		fmt.Println("\nBill of materials:")
		for _, item := range m.BillOfMaterials {
			line := fmt.Sprintf("  %-8s %s", item.Quantity, item.Item)
			if item.Specification != "" {
				line += " (" + item.Specification + ")"
			}
			fmt.Println(line)
		}
	}
	if m.Rationale != "" {
		fmt.Printf("\nRationale:\n%s\n", m.Rationale)
	}
	if m.Code != "" {
		fmt.Printf("\nCode:\n%s\n", m.Code)
	}
	return nil
}

// findModel matches a model by id or by name (case-insensitive).
func findModel(proj *project.Project, ref string) *project.Model {
	if m := proj.ModelByID(ref); m != nil {
		return m
	}
	for i := range proj.Models {
		if strings.EqualFold(proj.Models[i].Name, ref) {
			return &proj.Models[i]
		}
	}
	return nil
}
