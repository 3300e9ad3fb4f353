// Package element implements the SWE Common simple components as schema
// elements: typed, optionally constrained attributes whose value travels
// over a single JSON primitive.
//
// Elements are plain values without internal synchronization. A caller that
// shares one across goroutines must serialize access itself.
package element

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// Element kinds, as they appear in the "type" member of encoded elements.
const (
	KindTime     = "Time"
	KindQuantity = "Quantity"
	KindCount    = "Count"
	KindBoolean  = "Boolean"
	KindText     = "Text"
)

// Element is the capability every schema element kind implements.
type Element interface {
	// Kind returns the element kind name.
	Kind() string
	// Base returns the attributes shared by all kinds.
	Base() *Common
	// ValueJSON returns the value as a JSON primitive, or null when unset.
	ValueJSON() json.RawMessage
	// SetValueJSON assigns a value from a JSON primitive. Rejected input is
	// logged and leaves the element unchanged.
	SetValueJSON(raw json.RawMessage)
	// TrySetValueJSON behaves like SetValueJSON but returns the rejection
	// as a *codec.InputError instead of logging it.
	TrySetValueJSON(raw json.RawMessage) error
	// ValueIsValid reports whether a value is set and admitted by the
	// constraint, if any.
	ValueIsValid() bool
	// Fields returns the field descriptor table in declaration order.
	Fields() []values.FieldDescriptor
	// Equals reports structural equality with other.
	Equals(other Element) bool
	// Hash returns a structural hash consistent with Equals.
	Hash() (uint64, error)
}

// Constrained is implemented by kinds that accept a constraint.
type Constrained interface {
	Element
	GetConstraint() constraint.Constraint
	SetConstraint(c constraint.Constraint)
}

// setSoftly applies try and logs a rejection instead of returning it.
func setSoftly(kind string, raw json.RawMessage, try func(json.RawMessage) error) {
	err := try(raw)
	if err == nil {
		return
	}

	var inputErr *codec.InputError
	if !errors.As(err, &inputErr) {
		slog.Warn("given value was rejected", "kind", kind, "input", string(raw), "error", err)
		return
	}
	switch inputErr.Kind {
	case codec.KindConversion:
		slog.Warn("given value is not a valid "+kind+" value",
			"kind", kind, "input", inputErr.Input, "error", inputErr.Cause)
	case codec.KindMalformed:
		slog.Warn("given value is not valid JSON", "kind", kind, "input", inputErr.Input)
	default:
		slog.Warn("given value is not a JSON primitive", "kind", kind, "input", inputErr.Input)
	}
}

// validate applies the shared validity rule: no value is never valid, no
// constraint admits any value, otherwise the constraint decides.
func validate(value *string, uom string, c constraint.Constraint) bool {
	if value == nil {
		return false
	}
	if c == nil {
		return true
	}
	return c.IsValid(*value, uom)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// structuralHash hashes a kind-specific view built from comparable fields.
func structuralHash(view any) (uint64, error) {
	return hashstructure.Hash(view, hashstructure.FormatV2, nil)
}
