package species

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions reads all .yaml files in dir and parses each as a Definition.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed definitions (may be an empty slice) or a
// non-nil error; a single malformed file fails the whole load.
func LoadDefinitions(dir string) ([]*Definition, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*Definition, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d Definition
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing species file %s: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("validating species file %s: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}

// LoadRegistry builds a Registry from the YAML definitions in dir.
// If dir is unreadable or contains a malformed file, the built-in defaults
// are returned along with the load error, so callers can log the problem and
// keep the game playable.
//
// Postcondition: The returned Registry is always non-nil and non-empty.
func LoadRegistry(dir string) (*Registry, error) {
	defs, err := LoadDefinitions(dir)
	if err != nil {
		return DefaultRegistry(), err
	}
	if len(defs) == 0 {
		return DefaultRegistry(), nil
	}
	r := NewRegistry()
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return DefaultRegistry(), err
		}
	}
	return r, nil
}

// yamlFiles returns the sorted paths of all .yaml/.yml files directly in dir.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
