// Package catalog holds the static marketplace catalog of starter designs.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Entry is one marketplace item: a starter design brief users can seed a
// project with.
type Entry struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Brief   string   `yaml:"brief"`
	Tags    []string `yaml:"tags"`
}

type catalogFile struct {
	Entries []Entry `yaml:"entries"`
}

// List returns all catalog entries.
func List() ([]Entry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return file.Entries, nil
}

// Find returns the catalog entry with the given id.
func Find(id string) (*Entry, error) {
	entries, err := List()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("catalog entry not found: %s", id)
}
