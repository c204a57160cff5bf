// internal/forecast/registry.go
package forecast

import (
	"fmt"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// Registry maps method ids to model constructors. It is built once at
// startup and passed into the orchestrator explicitly; there is no ambient
// global registry. Not safe for concurrent registration, which only
// happens during startup.
type Registry struct {
	builders map[domain.MethodID]func() Model
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[domain.MethodID]func() Model)}
}

// Register binds id to a model constructor, replacing any previous binding.
func (r *Registry) Register(id domain.MethodID, build func() Model) {
	r.builders[id] = build
}

// Resolve returns a fresh model instance for id.
func (r *Registry) Resolve(id domain.MethodID) (Model, error) {
	build, ok := r.builders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMethod, id)
	}
	return build(), nil
}

// Methods lists the registered ids in no particular order.
func (r *Registry) Methods() []domain.MethodID {
	out := make([]domain.MethodID, 0, len(r.builders))
	for id := range r.builders {
		out = append(out, id)
	}
	return out
}
