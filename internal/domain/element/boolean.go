package element

import (
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// Boolean is a true/false flag. It takes no constraint and is valid
// whenever a value is set.
type Boolean struct {
	Value *bool `json:"-"`
	Common
}

// NewBoolean creates an empty Boolean.
func NewBoolean() *Boolean {
	return &Boolean{}
}

var booleanFields = withCommon(
	values.FieldDescriptor{
		Name:        "value",
		Label:       "Value",
		Description: "Boolean value.",
		Optional:    true,
		Visible:     values.ProfileValue,
		Editable:    values.ProfileValue,
	},
)

// Kind implements Element
func (b *Boolean) Kind() string {
	return KindBoolean
}

// Fields implements Element
func (b *Boolean) Fields() []values.FieldDescriptor {
	return booleanFields
}

// ValueJSON implements Element
func (b *Boolean) ValueJSON() json.RawMessage {
	return codec.Bool.ToJSON(b.Value)
}

// SetValueJSON implements Element
func (b *Boolean) SetValueJSON(raw json.RawMessage) {
	setSoftly(KindBoolean, raw, b.TrySetValueJSON)
}

// TrySetValueJSON implements Element
func (b *Boolean) TrySetValueJSON(raw json.RawMessage) error {
	v, err := codec.Bool.FromJSON(raw)
	if err != nil {
		return err
	}
	b.Value = v
	return nil
}

// ValueIsValid implements Element
func (b *Boolean) ValueIsValid() bool {
	return b.Value != nil
}

// Equals implements Element
func (b *Boolean) Equals(other Element) bool {
	o, ok := other.(*Boolean)
	if !ok || b == nil || o == nil {
		return ok && b == o
	}
	return b.Common == o.Common && equalPtr(b.Value, o.Value)
}

// Hash implements Element
func (b *Boolean) Hash() (uint64, error) {
	return structuralHash(struct {
		Value  *bool
		Kind   string
		Common Common
	}{b.Value, KindBoolean, b.Common})
}

// MarshalJSON implements json.Marshaler
func (b Boolean) MarshalJSON() ([]byte, error) {
	type attrs Boolean
	return encodeElement(KindBoolean, attrs(b), nil, b.ValueJSON())
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Boolean) UnmarshalJSON(data []byte) error {
	type attrs Boolean
	members, err := decodeElement(KindBoolean, data, (*attrs)(b))
	if err != nil {
		return err
	}
	if members.constraint != nil {
		return fmt.Errorf("%s does not accept a constraint", KindBoolean)
	}
	return decodeValue(KindBoolean, members.value, b.TrySetValueJSON)
}
