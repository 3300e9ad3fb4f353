package element

import (
	"encoding/json"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// Text is a free text value. Numbers and booleans supplied on the value
// channel are stored as their literal text.
type Text struct {
	Constraint constraint.Constraint `json:"-"`
	Value      *string               `json:"-"`
	Common
}

// NewText creates an empty Text.
func NewText() *Text {
	return &Text{}
}

var textFields = withCommon(
	values.FieldDescriptor{
		Name:        "constraint",
		Label:       "Constraint",
		Description: "Restricts the allowed text, as a token list or pattern.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "value",
		Label:       "Value",
		Description: "Text value that must match the constraint.",
		Optional:    true,
		Visible:     values.ProfileValue,
		Editable:    values.ProfileValue,
	},
)

// Kind implements Element
func (t *Text) Kind() string {
	return KindText
}

// Fields implements Element
func (t *Text) Fields() []values.FieldDescriptor {
	return textFields
}

// GetConstraint implements Constrained
func (t *Text) GetConstraint() constraint.Constraint {
	return t.Constraint
}

// SetConstraint implements Constrained
func (t *Text) SetConstraint(c constraint.Constraint) {
	t.Constraint = c
}

// ValueJSON implements Element
func (t *Text) ValueJSON() json.RawMessage {
	return codec.String.ToJSON(t.Value)
}

// SetValueJSON implements Element
func (t *Text) SetValueJSON(raw json.RawMessage) {
	setSoftly(KindText, raw, t.TrySetValueJSON)
}

// TrySetValueJSON implements Element
func (t *Text) TrySetValueJSON(raw json.RawMessage) error {
	v, err := codec.String.FromJSON(raw)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

// ValueIsValid implements Element
func (t *Text) ValueIsValid() bool {
	return validate(t.Value, "", t.Constraint)
}

// Equals implements Element
func (t *Text) Equals(other Element) bool {
	o, ok := other.(*Text)
	if !ok || t == nil || o == nil {
		return ok && t == o
	}
	return t.Common == o.Common &&
		equalPtr(t.Value, o.Value) &&
		constraint.Equal(t.Constraint, o.Constraint)
}

// Hash implements Element
func (t *Text) Hash() (uint64, error) {
	return structuralHash(struct {
		Value      *string
		Kind       string
		Constraint string
		Common     Common
	}{t.Value, KindText, constraint.Canonical(t.Constraint), t.Common})
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	type attrs Text
	return encodeElement(KindText, attrs(t), t.Constraint, t.ValueJSON())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	type attrs Text
	members, err := decodeElement(KindText, data, (*attrs)(t))
	if err != nil {
		return err
	}
	if t.Constraint, err = decodeConstraint(KindText, members.constraint); err != nil {
		return err
	}
	return decodeValue(KindText, members.value, t.TrySetValueJSON)
}
