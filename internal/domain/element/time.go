package element

import (
	"encoding/json"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// Time is a time position, expressed either as an ISO-8601 calendar value or
// as a numeric offset in a time unit.
type Time struct {
	Constraint    constraint.Constraint `json:"-"`
	ReferenceTime *string               `json:"referenceTime,omitempty"`
	LocalFrame    *string               `json:"localFrame,omitempty"`
	Value         *string               `json:"-"`
	UOM           string                `json:"uom"`
	Common
}

// NewTime creates a Time with the Gregorian calendar unit.
func NewTime() *Time {
	return &Time{UOM: constraint.UOMGregorian}
}

var timeFields = withCommon(
	values.FieldDescriptor{
		Name:  "referenceTime",
		Label: "Reference Time",
		Description: "Time origin different from the one implied by the reference frame, " +
			"expressed as a calendar date/time in that frame.",
		Optional: true,
		Visible:  values.ProfileExpert,
		Editable: values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:  "localFrame",
		Label: "Local Frame",
		Description: "Declares that the value of this component defines the origin of a " +
			"local temporal frame of reference.",
		Optional: true,
		Visible:  values.ProfileExpert,
		Editable: values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:  "uom",
		Label: "Unit of Measurement",
		Description: "Time scale the value is expressed in. Only time units are allowed. " +
			"Defaults to the ISO-8601 Gregorian calendar.",
		Default:  constraint.UOMGregorian,
		Optional: true,
		Visible:  values.ProfileExpert,
		Editable: values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "constraint",
		Label:       "Constraint",
		Description: "Further restricts the range of possible time values.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "value",
		Label:       "Value",
		Description: "Time position that must match the constraint.",
		Optional:    true,
		Visible:     values.ProfileValue,
		Editable:    values.ProfileValue,
	},
)

// Kind implements Element
func (t *Time) Kind() string {
	return KindTime
}

// Fields implements Element
func (t *Time) Fields() []values.FieldDescriptor {
	return timeFields
}

// GetConstraint implements Constrained
func (t *Time) GetConstraint() constraint.Constraint {
	return t.Constraint
}

// SetConstraint implements Constrained
func (t *Time) SetConstraint(c constraint.Constraint) {
	t.Constraint = c
}

// ValueJSON implements Element
func (t *Time) ValueJSON() json.RawMessage {
	return codec.String.ToJSON(t.Value)
}

// SetValueJSON implements Element
func (t *Time) SetValueJSON(raw json.RawMessage) {
	setSoftly(KindTime, raw, t.TrySetValueJSON)
}

// TrySetValueJSON implements Element
func (t *Time) TrySetValueJSON(raw json.RawMessage) error {
	v, err := codec.String.FromJSON(raw)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

// ValueIsValid implements Element
func (t *Time) ValueIsValid() bool {
	return validate(t.Value, t.UOM, t.Constraint)
}

// Equals implements Element
func (t *Time) Equals(other Element) bool {
	o, ok := other.(*Time)
	if !ok || t == nil || o == nil {
		return ok && t == o
	}
	return t.Common == o.Common &&
		equalPtr(t.ReferenceTime, o.ReferenceTime) &&
		equalPtr(t.LocalFrame, o.LocalFrame) &&
		t.UOM == o.UOM &&
		equalPtr(t.Value, o.Value) &&
		constraint.Equal(t.Constraint, o.Constraint)
}

// Hash implements Element
func (t *Time) Hash() (uint64, error) {
	return structuralHash(struct {
		ReferenceTime *string
		LocalFrame    *string
		Value         *string
		Kind          string
		UOM           string
		Constraint    string
		Common        Common
	}{t.ReferenceTime, t.LocalFrame, t.Value, KindTime, t.UOM, constraint.Canonical(t.Constraint), t.Common})
}

// MarshalJSON implements json.Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	type attrs Time
	return encodeElement(KindTime, attrs(t), t.Constraint, t.ValueJSON())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	type attrs Time
	members, err := decodeElement(KindTime, data, (*attrs)(t))
	if err != nil {
		return err
	}
	if t.Constraint, err = decodeConstraint(KindTime, members.constraint); err != nil {
		return err
	}
	return decodeValue(KindTime, members.value, t.TrySetValueJSON)
}
