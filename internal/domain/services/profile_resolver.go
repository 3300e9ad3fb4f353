// Package services contains domain services that operate across element
// kinds. These services are stateless.
package services

import (
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// ResolvedField is a field descriptor as seen from one requested profile.
type ResolvedField struct {
	values.FieldDescriptor
	Required bool `json:"required" yaml:"required"`
	Editable bool `json:"editable" yaml:"editable"`
}

// ProfileResolver decides which fields a presentation layer shows for a
// requested profile. The same field table drives simple and expert views.
type ProfileResolver struct{}

// NewProfileResolver creates a new profile resolver.
func NewProfileResolver() *ProfileResolver {
	return &ProfileResolver{}
}

// Resolve returns the fields whose visibility intersects requested, in
// declaration order. Required reflects the descriptor's optional flag and
// does not depend on the profile.
func (r *ProfileResolver) Resolve(fields []values.FieldDescriptor, requested values.Profile) []ResolvedField {
	resolved := make([]ResolvedField, 0, len(fields))
	for _, f := range fields {
		if !f.VisibleIn(requested) {
			continue
		}
		resolved = append(resolved, ResolvedField{
			FieldDescriptor: f,
			Required:        f.IsRequired(),
			Editable:        f.EditableIn(requested),
		})
	}
	return resolved
}

// ResolveElement resolves the field table of el.
func (r *ProfileResolver) ResolveElement(el element.Element, requested values.Profile) []ResolvedField {
	return r.Resolve(el.Fields(), requested)
}
