// Package catalog provides asset-catalog lookups for the layout engine.
//
// The engine only needs two queries: which categories exist, and which
// concrete models back a category. Catalog order is a contract: deterministic
// model selection picks the first model in catalog order.
package catalog

import "sort"

// Catalog lists placeable asset categories and the models available for each.
type Catalog interface {
	// Categories returns all known category identifiers in catalog order.
	Categories() []string

	// Models returns the model identifiers for a category in catalog order.
	// Unknown categories yield an empty slice, never an error.
	Models(category string) []string
}

// Static is an in-memory Catalog with a fixed ordering.
type Static struct {
	order  []string
	models map[string][]string
}

// NewStatic builds a Static catalog from a category -> models map.
// Categories are ordered lexicographically so that map iteration order
// cannot leak into results.
func NewStatic(models map[string][]string) *Static {
	order := make([]string, 0, len(models))
	for name := range models {
		order = append(order, name)
	}
	sort.Strings(order)
	return &Static{order: order, models: copyModels(models)}
}

// newOrdered builds a Static catalog preserving an explicit category order.
// Used by the file loader, where the index file's order is authoritative.
func newOrdered(order []string, models map[string][]string) *Static {
	return &Static{order: append([]string(nil), order...), models: copyModels(models)}
}

// Categories returns all category identifiers in catalog order.
func (s *Static) Categories() []string {
	return append([]string(nil), s.order...)
}

// Models returns the models for a category, or an empty slice if unknown.
func (s *Static) Models(category string) []string {
	return append([]string(nil), s.models[category]...)
}

func copyModels(models map[string][]string) map[string][]string {
	out := make(map[string][]string, len(models))
	for name, list := range models {
		out[name] = append([]string(nil), list...)
	}
	return out
}
