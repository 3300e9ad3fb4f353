// Package constraint provides the validity restrictions that can be attached
// to a schema element.
//
// A Constraint is a total predicate over (value, uom) pairs: it never fails
// and treats anything it cannot interpret as invalid. Elements only ever call
// IsValid, so new variants are added by implementing the interface and
// registering a decoder, without touching element code.
package constraint

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Constraint decides whether a value expressed in a unit of measure is
// admissible.
type Constraint interface {
	// Kind returns the variant name used in encoded documents.
	Kind() string
	// IsValid reports whether value, interpreted under uom, is admissible.
	IsValid(value, uom string) bool
}

// Variant names.
const (
	KindAllowedTimes  = "AllowedTimes"
	KindAllowedValues = "AllowedValues"
	KindAllowedTokens = "AllowedTokens"
	KindExpression    = "Expression"
)

// Canonical returns the encoded form of c, or "" for a nil constraint.
func Canonical(c Constraint) string {
	if c == nil {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return c.Kind()
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}

// Equal reports whether two constraints are structurally identical.
func Equal(a, b Constraint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && Canonical(a) == Canonical(b)
}

// significantFigures counts the significant digits of a decimal literal.
// Leading zeros are not significant; trailing zeros are.
func significantFigures(literal string) int {
	s := strings.TrimLeft(strings.TrimSpace(literal), "+-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.Replace(s, ".", "", 1)
	s = strings.TrimLeft(s, "0")
	return len(s)
}

func withinSignificantFigures(literal string, limit int) bool {
	return limit <= 0 || significantFigures(literal) <= limit
}
