package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Index is the YAML asset index file format:
//
//	categories:
//	  - name: apple
//	    models: [agveuv, omzprq]
//	  - name: bowl
//	    models: [ajzltc]
type Index struct {
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry names one category and its model identifiers.
type CategoryEntry struct {
	Name   string   `yaml:"name"`
	Models []string `yaml:"models"`
}

// Load reads a YAML asset index and returns a Static catalog preserving the
// file's category order. Uses strict parsing: unrecognized keys (typos) are
// rejected.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset index: %w", err)
	}
	var idx Index
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&idx); err != nil {
		return nil, fmt.Errorf("parsing asset index: %w", err)
	}
	if err := idx.validate(); err != nil {
		return nil, err
	}

	order := make([]string, 0, len(idx.Categories))
	models := make(map[string][]string, len(idx.Categories))
	for _, entry := range idx.Categories {
		order = append(order, entry.Name)
		models[entry.Name] = entry.Models
	}
	return newOrdered(order, models), nil
}

func (idx *Index) validate() error {
	seen := make(map[string]bool, len(idx.Categories))
	for i, entry := range idx.Categories {
		if entry.Name == "" {
			return fmt.Errorf("categories[%d]: name must not be empty", i)
		}
		if seen[entry.Name] {
			return fmt.Errorf("categories[%d]: duplicate category %q", i, entry.Name)
		}
		seen[entry.Name] = true
	}
	return nil
}
