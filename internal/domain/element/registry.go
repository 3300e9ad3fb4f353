package element

import (
	"encoding/json"
	"fmt"
)

// Factory returns a new element of one kind, populated with its defaults.
type Factory func() Element

// Registry maps element kind names to factories. Kinds are listed in
// registration order.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a new registry holding the built-in kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, kind := range []struct {
		name    string
		factory Factory
	}{
		{KindTime, func() Element { return NewTime() }},
		{KindQuantity, func() Element { return NewQuantity("") }},
		{KindCount, func() Element { return NewCount() }},
		{KindBoolean, func() Element { return NewBoolean() }},
		{KindText, func() Element { return NewText() }},
	} {
		if err := r.Register(kind.name, kind.factory); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a kind. Registering a name twice is an error.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" || factory == nil {
		return fmt.Errorf("element kind and factory are required")
	}
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("element kind already registered: %s", kind)
	}
	r.factories[kind] = factory
	r.order = append(r.order, kind)
	return nil
}

// Kinds returns the registered kind names.
func (r *Registry) Kinds() []string {
	return append([]string(nil), r.order...)
}

// New creates an element of the given kind.
func (r *Registry) New(kind string) (Element, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown element type: %s", kind)
	}
	return factory(), nil
}

// Decode builds an element from its encoded form, dispatching on "type".
func (r *Registry) Decode(data []byte) (Element, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to decode element: %w", err)
	}
	if header.Type == "" {
		return nil, fmt.Errorf("element type is required")
	}

	el, err := r.New(header.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, el); err != nil {
		return nil, err
	}
	return el, nil
}
