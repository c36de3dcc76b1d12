// Package plugin provides an extension point for the assertion
// framework. Plugins contribute custom check kinds that suite
// definitions can reference alongside the built-in catalogue.
package plugin

import (
	"fmt"
	"sync"

	"digital.vasic.webassert/pkg/suite"
)

// Plugin defines the interface for extending the framework.
type Plugin interface {
	// Name returns the plugin's unique name.
	Name() string

	// Version returns the plugin's version string.
	Version() string

	// Init initializes the plugin with the given context. A
	// plugin registers its check builders here.
	Init(ctx *Context) error
}

// Context provides access to framework extension points during
// plugin initialization.
type Context struct {
	// Config holds arbitrary plugin configuration.
	Config map[string]interface{}

	mu       sync.Mutex
	builders map[string]suite.CheckBuilder
}

// NewContext creates an empty plugin context.
func NewContext(config map[string]interface{}) *Context {
	return &Context{
		Config:   config,
		builders: make(map[string]suite.CheckBuilder),
	}
}

// RegisterCheckKind adds a custom check builder under the
// given kind name. Returns an error if the kind is already
// taken by another plugin.
func (c *Context) RegisterCheckKind(
	kind string,
	builder suite.CheckBuilder,
) error {
	if kind == "" {
		return fmt.Errorf("check kind cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("check builder cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.builders[kind]; exists {
		return fmt.Errorf(
			"check kind already registered: %s", kind,
		)
	}

	c.builders[kind] = builder
	return nil
}

// CheckBuilders returns a copy of all registered custom check
// builders, keyed by kind, suitable for passing to
// suite.Compile.
func (c *Context) CheckBuilders() map[string]suite.CheckBuilder {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(
		map[string]suite.CheckBuilder, len(c.builders),
	)
	for k, b := range c.builders {
		out[k] = b
	}
	return out
}

// Registry manages plugin registration and initialization.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	loaded  map[string]bool
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
		loaded:  make(map[string]bool),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf(
			"plugin already registered: %s", name,
		)
	}

	r.plugins[name] = p
	return nil
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.plugins[name]
	if !exists {
		return nil, fmt.Errorf("plugin not found: %s", name)
	}
	return p, nil
}

// InitAll initializes every registered plugin against the
// given context, skipping plugins already initialized. The
// first initialization error aborts the remainder.
func (r *Registry) InitAll(ctx *Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, p := range r.plugins {
		if r.loaded[name] {
			continue
		}
		if err := p.Init(ctx); err != nil {
			return fmt.Errorf(
				"plugin %s init failed: %w", name, err,
			)
		}
		r.loaded[name] = true
	}
	return nil
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
