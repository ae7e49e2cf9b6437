package model

import (
	"fmt"
	"os"
)

// checkPrerequisites verifies the generation backend can be reached before
// any project state is mutated.
func checkPrerequisites() error {
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set. Export it or add it to a .env file")
	}
	return nil
}
