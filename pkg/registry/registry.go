// Package registry provides suite registration, discovery, and
// dependency-ordered retrieval.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.webassert/pkg/suite"
)

// Registry defines the interface for managing suite
// definitions.
type Registry interface {
	// Register adds a suite definition.
	Register(def *suite.Definition) error

	// Get retrieves a definition by ID.
	Get(id suite.ID) (*suite.Definition, error)

	// List returns all registered definitions sorted by ID.
	List() []*suite.Definition

	// ListByCategory returns definitions matching the given
	// category.
	ListByCategory(category string) []*suite.Definition

	// DependencyOrder returns definitions in topological
	// (dependency) order.
	DependencyOrder() ([]*suite.Definition, error)

	// ValidateDependencies checks that every dependency
	// referenced by a suite is also registered.
	ValidateDependencies() error

	// Clear removes all definitions.
	Clear()

	// Count returns the number of registered definitions.
	Count() int
}

// DefaultRegistry is the standard Registry implementation. It
// is safe for concurrent use.
type DefaultRegistry struct {
	mu          sync.RWMutex
	definitions map[suite.ID]*suite.Definition
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		definitions: make(map[suite.ID]*suite.Definition),
	}
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// Register adds a suite definition. Returns an error if a
// definition with the same ID is already registered or the
// definition fails validation.
func (r *DefaultRegistry) Register(
	def *suite.Definition,
) error {
	if errs := suite.Validate(def); len(errs) > 0 {
		return fmt.Errorf(
			"suite %s is invalid: %w", def.ID, errs[0],
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.ID]; exists {
		return fmt.Errorf(
			"suite already registered: %s", def.ID,
		)
	}

	r.definitions[def.ID] = def
	return nil
}

// Get retrieves a definition by ID.
func (r *DefaultRegistry) Get(
	id suite.ID,
) (*suite.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[id]
	if !exists {
		return nil, fmt.Errorf("suite not found: %s", id)
	}
	return def, nil
}

// List returns all registered definitions sorted by ID.
func (r *DefaultRegistry) List() []*suite.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*suite.Definition, 0, len(r.definitions))
	for _, d := range r.definitions {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// ListByCategory returns definitions matching the given
// category, sorted by ID.
func (r *DefaultRegistry) ListByCategory(
	category string,
) []*suite.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*suite.Definition
	for _, d := range r.definitions {
		if d.Category == category {
			out = append(out, d)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// DependencyOrder returns definitions in topological order
// using Kahn's algorithm. Returns an error if a dependency
// cycle is detected.
func (r *DefaultRegistry) DependencyOrder() (
	[]*suite.Definition, error,
) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return topologicalSort(r.definitions)
}

// ValidateDependencies checks that every dependency referenced
// by a registered suite is also registered. Returns the first
// missing dependency found.
func (r *DefaultRegistry) ValidateDependencies() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, def := range r.definitions {
		for _, dep := range def.Dependencies {
			if _, exists := r.definitions[dep]; !exists {
				return fmt.Errorf(
					"suite %s has unregistered dependency: %s",
					id, dep,
				)
			}
		}
	}
	return nil
}

// Clear removes all definitions.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions = make(map[suite.ID]*suite.Definition)
}

// Count returns the number of registered definitions.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}
