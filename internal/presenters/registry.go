package presenters

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.PresenterFactory = (*Registry)(nil)

// BuilderFunc creates a Presenter from generic config.
// Config is a map of presenter-specific settings.
type BuilderFunc func(cfg map[string]any) (driven.Presenter, error)

// Registry maps presenter names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new presenter registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a presenter builder to the registry.
// Name should be unique and match the presenter's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a presenter by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Presenter, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, name)
	}
	return builder(cfg)
}

// Has returns true if a presenter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered presenter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
