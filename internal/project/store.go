package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/formahq/forma/internal/plan"
	"github.com/formahq/forma/internal/util"
)

const (
	// DefaultDir is the dot-directory forma keeps its state under.
	DefaultDir = ".forma"

	projectsDir     = "projects"
	projectFileName = "project.json"
)

// Store persists projects as pretty-printed JSON documents, one folder per
// project under <root>/projects/<id>-<name>/. All writes go through an
// in-process mutex and an atomic temp-file+rename, so concurrently running
// plan executors see individually consistent merge updates
// (last-write-wins per update call).
type Store struct {
	mu   sync.Mutex
	root string
}

// NewStore creates a store rooted at the given directory. Pass DefaultDir
// for the standard `.forma/` layout.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Initialized reports whether the store's directory structure exists.
func (s *Store) Initialized() bool {
	info, err := os.Stat(filepath.Join(s.root, projectsDir))
	return err == nil && info.IsDir()
}

// Init creates the store's directory structure.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Join(s.root, projectsDir), 0755); err != nil {
		return fmt.Errorf("failed to create projects directory: %w", err)
	}
	return nil
}

// Create makes a new project folder and persists an empty project document.
func (s *Store) Create(name string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := util.ShortID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project id: %w", err)
	}

	p := &Project{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Inputs:    []DesignInput{},
		Models:    []Model{},
		Plans:     []plan.ExecutionPlan{},
	}

	dir := filepath.Join(s.root, projectsDir, id+"-"+util.KebabCase(name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project folder: %w", err)
	}

	if err := writeProject(dir, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Dir returns the folder of the project matching ref (project id or name).
func (s *Store) Dir(ref string) (string, error) {
	path := filepath.Join(s.root, projectsDir)
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no projects found. Run 'forma init' first")
		}
		return "", fmt.Errorf("failed to read projects directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Folder format is <id>-<name>; match on either part.
		id, name, _ := strings.Cut(entry.Name(), "-")
		if id == ref || name == util.KebabCase(ref) {
			matches = append(matches, entry.Name())
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("project not found: %s", ref)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("multiple projects match '%s': %v", ref, matches)
	}
	return filepath.Join(path, matches[0]), nil
}

// Load reads the project matching ref (project id or name).
func (s *Store) Load(ref string) (*Project, error) {
	dir, err := s.Dir(ref)
	if err != nil {
		return nil, err
	}
	return readProject(dir)
}

// List returns all projects, in directory order.
func (s *Store) List() ([]*Project, error) {
	path := filepath.Join(s.root, projectsDir)
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var projects []*Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		p, err := readProject(filepath.Join(path, entry.Name()))
		if err != nil {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// AddInput appends a design input to the project.
func (s *Store) AddInput(projectRef string, input DesignInput) error {
	return s.mutate(projectRef, func(p *Project) error {
		p.Inputs = append(p.Inputs, input)
		return nil
	})
}

// AddModel appends a model to the project.
func (s *Store) AddModel(projectRef string, m Model) error {
	return s.mutate(projectRef, func(p *Project) error {
		p.Models = append(p.Models, m)
		return nil
	})
}

// AddPlan appends an execution plan to the project's plan collection. Plans
// are never removed; the collection is the audit trail.
func (s *Store) AddPlan(projectRef string, pl *plan.ExecutionPlan) error {
	return s.mutate(projectRef, func(p *Project) error {
		p.Plans = append(p.Plans, *pl)
		return nil
	})
}

// LookupInputs resolves design input ids to full input records. Missing ids
// are silently dropped, so the result may be narrower than the request.
func (s *Store) LookupInputs(projectID string, ids []string) []DesignInput {
	p, err := s.Load(projectID)
	if err != nil {
		return nil
	}

	var inputs []DesignInput
	for _, id := range ids {
		if in := p.InputByID(id); in != nil {
			inputs = append(inputs, *in)
		}
	}
	return inputs
}

// UpdateModel applies a shallow merge of fields (keyed by JSON field name)
// onto the named model and persists the project. The model's updatedAt is
// stamped on every merge.
func (s *Store) UpdateModel(ctx context.Context, projectID, modelID string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.mutate(projectID, func(p *Project) error {
		m := p.ModelByID(modelID)
		if m == nil {
			return fmt.Errorf("model not found: %s", modelID)
		}
		if err := mergeFields(m, fields); err != nil {
			return err
		}
		m.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// UpdatePlan applies a shallow merge of fields onto the named plan.
func (s *Store) UpdatePlan(ctx context.Context, projectID, planID string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.mutate(projectID, func(p *Project) error {
		pl := p.PlanByID(planID)
		if pl == nil {
			return fmt.Errorf("plan not found: %s", planID)
		}
		return mergeFields(pl, fields)
	})
}

// UpdateTaskInPlan applies a shallow merge of fields onto one task of the
// named plan.
func (s *Store) UpdateTaskInPlan(ctx context.Context, projectID, planID, taskID string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.mutate(projectID, func(p *Project) error {
		pl := p.PlanByID(planID)
		if pl == nil {
			return fmt.Errorf("plan not found: %s", planID)
		}
		t := pl.TaskByID(taskID)
		if t == nil {
			return fmt.Errorf("task not found in plan %s: %s", planID, taskID)
		}
		return mergeFields(t, fields)
	})
}

// mutate runs a load-modify-save cycle under the store mutex.
func (s *Store) mutate(projectRef string, fn func(*Project) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.Dir(projectRef)
	if err != nil {
		return err
	}
	p, err := readProject(dir)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return writeProject(dir, p)
}

// mergeFields shallow-merges fields onto entity via a JSON round trip, so
// keys follow the entity's JSON field names and untouched fields keep their
// values.
func mergeFields(entity any, fields map[string]any) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode entity: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal merged fields: %w", err)
	}
	if err := json.Unmarshal(merged, entity); err != nil {
		return fmt.Errorf("failed to apply merged fields: %w", err)
	}
	return nil
}

// readProject reads and parses project.json from a project directory.
func readProject(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, projectFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read project.json: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project.json: %w", err)
	}
	return &p, nil
}

// writeProject atomically writes project.json using a temp file + rename.
func writeProject(dir string, p *Project) error {
	path := filepath.Join(dir, projectFileName)
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
