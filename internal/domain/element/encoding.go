package element

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
)

// Encoded elements are flat JSON objects:
//
//	{"type": "Time", "identifier": "t0", "uom": "...", "constraint": {...}, "value": "..."}
//
// Kind-specific attributes are marshalled from a method-free alias of the
// element struct; "type", "constraint" and "value" are handled here so the
// value always travels through the element's codec.

func encodeElement(kind string, attrs any, c constraint.Constraint, value json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}

	members := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	members["type"], _ = json.Marshal(kind)
	if c != nil {
		encoded, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s constraint: %w", c.Kind(), err)
		}
		members["constraint"] = encoded
	}
	if value != nil && string(value) != string(codec.Null) {
		members["value"] = value
	}

	return json.Marshal(members)
}

// decodedMembers holds the members handled outside the kind alias.
type decodedMembers struct {
	constraint json.RawMessage
	value      json.RawMessage
}

func decodeElement(kind string, data []byte, attrs any) (decodedMembers, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return decodedMembers{}, fmt.Errorf("failed to decode %s: %w", kind, err)
	}

	if raw, ok := members["type"]; ok {
		var declared string
		if err := json.Unmarshal(raw, &declared); err != nil || declared != kind {
			return decodedMembers{}, fmt.Errorf("cannot decode %s into %s", string(raw), kind)
		}
	}

	decoded := decodedMembers{
		constraint: members["constraint"],
		value:      members["value"],
	}
	delete(members, "type")
	delete(members, "constraint")
	delete(members, "value")

	rest, err := json.Marshal(members)
	if err != nil {
		return decodedMembers{}, err
	}
	if err := json.Unmarshal(rest, attrs); err != nil {
		return decodedMembers{}, fmt.Errorf("failed to decode %s attributes: %w", kind, err)
	}
	return decoded, nil
}

// decodeConstraint decodes a constraint member, refusing the variants in
// unsupported.
func decodeConstraint(kind string, raw json.RawMessage, unsupported ...string) (constraint.Constraint, error) {
	c, err := constraint.DefaultRegistry().Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if c != nil && slices.Contains(unsupported, c.Kind()) {
		return nil, fmt.Errorf("%s: constraint type %s is not supported", kind, c.Kind())
	}
	return c, nil
}

func decodeValue(kind string, raw json.RawMessage, try func(json.RawMessage) error) error {
	if raw == nil {
		return nil
	}
	if err := try(raw); err != nil {
		return fmt.Errorf("%s value: %w", kind, err)
	}
	return nil
}
