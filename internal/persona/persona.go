// Package persona provides named bundles of natural-language instructions
// that configure the style and expertise of the generation backend for all
// tasks in a plan.
package persona

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is one persona: its instruction string is threaded into every
// generation call of a plan as the system prompt.
type Preset struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Instruction string `yaml:"instruction"`
}

type presetFile struct {
	Personas []Preset `yaml:"personas"`
}

// Defaults returns the built-in persona presets.
func Defaults() ([]Preset, error) {
	return parse(presetsYAML)
}

// LoadFile reads persona presets from a user-supplied YAML file.
func LoadFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}
	return parse(data)
}

// Find returns the preset with the given id from the built-in set.
func Find(id string) (*Preset, error) {
	presets, err := Defaults()
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].ID == id {
			return &presets[i], nil
		}
	}
	return nil, fmt.Errorf("persona not found: %s", id)
}

func parse(data []byte) ([]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse persona presets: %w", err)
	}
	for _, p := range file.Personas {
		if p.ID == "" || p.Instruction == "" {
			return nil, fmt.Errorf("persona preset missing id or instruction")
		}
	}
	return file.Personas, nil
}
