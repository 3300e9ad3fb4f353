package values

// FieldDescriptor is static metadata describing one configurable attribute
// of an element kind. Element kinds publish an ordered table of these; the
// order is the declaration order and is significant for presentation.
type FieldDescriptor struct {
	Name        string  `json:"name" yaml:"name"`
	Label       string  `json:"label" yaml:"label"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string  `json:"default,omitempty" yaml:"default,omitempty"`
	Optional    bool    `json:"optional" yaml:"optional"`
	Visible     Profile `json:"visible" yaml:"visible"`
	Editable    Profile `json:"editable" yaml:"editable"`
}

// IsRequired returns true if the field must be supplied.
func (f FieldDescriptor) IsRequired() bool {
	return !f.Optional
}

// VisibleIn reports whether the field is shown for the requested profile.
func (f FieldDescriptor) VisibleIn(requested Profile) bool {
	return f.Visible.Intersects(requested)
}

// EditableIn reports whether the field may be changed for the requested profile.
func (f FieldDescriptor) EditableIn(requested Profile) bool {
	return f.Editable.Intersects(requested)
}
