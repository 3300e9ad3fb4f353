package element

import (
	"encoding/json"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/values"
	"github.com/shopspring/decimal"
)

// Quantity is a decimal measurement with a unit of measure.
type Quantity struct {
	Constraint constraint.Constraint `json:"-"`
	Value      *decimal.Decimal      `json:"-"`
	UOM        string                `json:"uom"`
	Common
}

// NewQuantity creates a Quantity in the given unit.
func NewQuantity(uom string) *Quantity {
	return &Quantity{UOM: uom}
}

var quantityFields = withCommon(
	values.FieldDescriptor{
		Name:        "uom",
		Label:       "Unit of Measurement",
		Description: "UCUM code of the unit the value is expressed in.",
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "constraint",
		Label:       "Constraint",
		Description: "Restricts the allowed values, for example to an interval.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	values.FieldDescriptor{
		Name:        "value",
		Label:       "Value",
		Description: "Decimal value that must match the constraint.",
		Optional:    true,
		Visible:     values.ProfileValue,
		Editable:    values.ProfileValue,
	},
)

// Kind implements Element
func (q *Quantity) Kind() string {
	return KindQuantity
}

// Fields implements Element
func (q *Quantity) Fields() []values.FieldDescriptor {
	return quantityFields
}

// GetConstraint implements Constrained
func (q *Quantity) GetConstraint() constraint.Constraint {
	return q.Constraint
}

// SetConstraint implements Constrained
func (q *Quantity) SetConstraint(c constraint.Constraint) {
	q.Constraint = c
}

// ValueJSON implements Element
func (q *Quantity) ValueJSON() json.RawMessage {
	return codec.Decimal.ToJSON(q.Value)
}

// SetValueJSON implements Element
func (q *Quantity) SetValueJSON(raw json.RawMessage) {
	setSoftly(KindQuantity, raw, q.TrySetValueJSON)
}

// TrySetValueJSON implements Element
func (q *Quantity) TrySetValueJSON(raw json.RawMessage) error {
	v, err := codec.Decimal.FromJSON(raw)
	if err != nil {
		return err
	}
	q.Value = v
	return nil
}

// ValueIsValid implements Element
func (q *Quantity) ValueIsValid() bool {
	return validate(q.literal(), q.UOM, q.Constraint)
}

func (q *Quantity) literal() *string {
	if q.Value == nil {
		return nil
	}
	s := codec.DecimalLiteral(*q.Value)
	return &s
}

// Equals implements Element
func (q *Quantity) Equals(other Element) bool {
	o, ok := other.(*Quantity)
	if !ok || q == nil || o == nil {
		return ok && q == o
	}
	return q.Common == o.Common &&
		q.UOM == o.UOM &&
		equalPtr(q.literal(), o.literal()) &&
		constraint.Equal(q.Constraint, o.Constraint)
}

// Hash implements Element
func (q *Quantity) Hash() (uint64, error) {
	return structuralHash(struct {
		Value      *string
		Kind       string
		UOM        string
		Constraint string
		Common     Common
	}{q.literal(), KindQuantity, q.UOM, constraint.Canonical(q.Constraint), q.Common})
}

// MarshalJSON implements json.Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	type attrs Quantity
	return encodeElement(KindQuantity, attrs(q), q.Constraint, q.ValueJSON())
}

// UnmarshalJSON implements json.Unmarshaler
func (q *Quantity) UnmarshalJSON(data []byte) error {
	type attrs Quantity
	members, err := decodeElement(KindQuantity, data, (*attrs)(q))
	if err != nil {
		return err
	}
	if q.Constraint, err = decodeConstraint(KindQuantity, members.constraint); err != nil {
		return err
	}
	return decodeValue(KindQuantity, members.value, q.TrySetValueJSON)
}
