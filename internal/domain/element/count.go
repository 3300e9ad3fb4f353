package element

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// Count is an integer counter. It has no unit of measure, so time
// constraints cannot apply and are refused when decoding.
type Count struct {
	Constraint constraint.Constraint `json:"-"`
	Value      *int64                `json:"-"`
	Common
}

// NewCount creates an empty Count.
func NewCount() *Count {
	return &Count{}
}

var countFields = withCommon(
	values.FieldDescriptor{
		Name:        "constraint",
		Label:       "Constraint",
		Description: "Restricts the allowed counts, for example to an interval.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "value",
		Label:       "Value",
		Description: "Integer value that must match the constraint.",
		Optional:    true,
		Visible:     values.ProfileValue,
		Editable:    values.ProfileValue,
	},
)

// Kind implements Element
func (c *Count) Kind() string {
	return KindCount
}

// Fields implements Element
func (c *Count) Fields() []values.FieldDescriptor {
	return countFields
}

// GetConstraint implements Constrained
func (c *Count) GetConstraint() constraint.Constraint {
	return c.Constraint
}

// SetConstraint implements Constrained. AllowedTimes is ignored with a
// warning.
func (c *Count) SetConstraint(cons constraint.Constraint) {
	if cons != nil && cons.Kind() == constraint.KindAllowedTimes {
		slog.Warn("constraint type is not supported", "kind", KindCount, "constraint", cons.Kind())
		return
	}
	c.Constraint = cons
}

// ValueJSON implements Element
func (c *Count) ValueJSON() json.RawMessage {
	return codec.Int.ToJSON(c.Value)
}

// SetValueJSON implements Element
func (c *Count) SetValueJSON(raw json.RawMessage) {
	setSoftly(KindCount, raw, c.TrySetValueJSON)
}

// TrySetValueJSON implements Element
func (c *Count) TrySetValueJSON(raw json.RawMessage) error {
	v, err := codec.Int.FromJSON(raw)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

// ValueIsValid implements Element
func (c *Count) ValueIsValid() bool {
	if c.Value == nil {
		return false
	}
	s := strconv.FormatInt(*c.Value, 10)
	return validate(&s, "", c.Constraint)
}

// Equals implements Element
func (c *Count) Equals(other Element) bool {
	o, ok := other.(*Count)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	return c.Common == o.Common &&
		equalPtr(c.Value, o.Value) &&
		constraint.Equal(c.Constraint, o.Constraint)
}

// Hash implements Element
func (c *Count) Hash() (uint64, error) {
	return structuralHash(struct {
		Value      *int64
		Kind       string
		Constraint string
		Common     Common
	}{c.Value, KindCount, constraint.Canonical(c.Constraint), c.Common})
}

// MarshalJSON implements json.Marshaler
func (c Count) MarshalJSON() ([]byte, error) {
	type attrs Count
	return encodeElement(KindCount, attrs(c), c.Constraint, c.ValueJSON())
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Count) UnmarshalJSON(data []byte) error {
	type attrs Count
	members, err := decodeElement(KindCount, data, (*attrs)(c))
	if err != nil {
		return err
	}
	if c.Constraint, err = decodeConstraint(KindCount, members.constraint, constraint.KindAllowedTimes); err != nil {
		return err
	}
	return decodeValue(KindCount, members.value, c.TrySetValueJSON)
}
