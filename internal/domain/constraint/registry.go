package constraint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Factory returns an empty constraint ready to be decoded into.
type Factory func() Constraint

// Registry maps variant names to factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.mustRegister(KindAllowedTimes, func() Constraint { return &AllowedTimes{} })
	r.mustRegister(KindAllowedValues, func() Constraint { return &AllowedValues{} })
	r.mustRegister(KindAllowedTokens, func() Constraint { return &AllowedTokens{} })
	r.mustRegister(KindExpression, func() Constraint { return &Expression{} })
	return r
}()

// DefaultRegistry returns the process-wide registry holding the built-in
// variants. Elements decode their constraints through it.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a variant. Registering a name twice is an error.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" || factory == nil {
		return fmt.Errorf("constraint kind and factory are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("constraint kind already registered: %s", kind)
	}
	r.factories[kind] = factory
	return nil
}

func (r *Registry) mustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Kinds returns the registered variant names, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Decode builds a constraint from its encoded form {"type": ..., ...}.
// Empty input and JSON null decode to a nil constraint.
func (r *Registry) Decode(data []byte) (Constraint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &header); err != nil {
		return nil, fmt.Errorf("failed to decode constraint: %w", err)
	}
	if header.Type == "" {
		return nil, fmt.Errorf("constraint type is required")
	}

	r.mu.RLock()
	factory, ok := r.factories[header.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown constraint type: %s", header.Type)
	}

	c := factory()
	if err := json.Unmarshal(trimmed, c); err != nil {
		return nil, fmt.Errorf("failed to decode %s constraint: %w", header.Type, err)
	}
	return c, nil
}
