package entities

import (
	"fmt"

	"github.com/reglet-dev/swecommon/internal/domain/element"
)

// Definition is a named set of schema elements loaded from one source.
type Definition struct {
	Source   string
	Version  string
	Elements []element.Element
}

// Find returns the element with the given identifier, or nil.
func (d *Definition) Find(identifier string) element.Element {
	for _, el := range d.Elements {
		if el.Base().Identifier == identifier {
			return el
		}
	}
	return nil
}

// Validate checks that every element carries a unique, non-empty identifier.
func (d *Definition) Validate() error {
	seen := make(map[string]bool, len(d.Elements))
	for i, el := range d.Elements {
		id := el.Base().Identifier
		if id == "" {
			return fmt.Errorf("element %d (%s): identifier is required", i, el.Kind())
		}
		if seen[id] {
			return fmt.Errorf("duplicate element identifier: %s", id)
		}
		seen[id] = true
	}
	return nil
}
