package constraint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/shopspring/decimal"
)

// ValueInterval is an inclusive numeric range.
type ValueInterval struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// AllowedValues restricts a numeric element to an enumeration of values
// and/or inclusive intervals, optionally limiting significant figures.
// The unit of measure is ignored: bounds are expressed in the element's unit.
type AllowedValues struct {
	Values             []decimal.Decimal `json:"values,omitempty"`
	Intervals          []ValueInterval   `json:"intervals,omitempty"`
	SignificantFigures int               `json:"significantFigures,omitempty"`
}

// Kind implements Constraint
func (c *AllowedValues) Kind() string {
	return KindAllowedValues
}

// IsValid implements Constraint
func (c *AllowedValues) IsValid(value, _ string) bool {
	literal := strings.TrimSpace(value)
	d, err := codec.ParseDecimal(literal)
	if err != nil {
		return false
	}

	if !withinSignificantFigures(literal, c.SignificantFigures) {
		return false
	}

	if len(c.Values) == 0 && len(c.Intervals) == 0 {
		return true
	}

	for _, allowed := range c.Values {
		if allowed.Equal(d) {
			return true
		}
	}

	for _, interval := range c.Intervals {
		if d.GreaterThanOrEqual(interval.Min) && d.LessThanOrEqual(interval.Max) {
			return true
		}
	}

	return false
}

// UnmarshalJSON implements json.Unmarshaler. Bounds whose exponent exceeds
// codec.MaxExponent are rejected.
func (c *AllowedValues) UnmarshalJSON(data []byte) error {
	type alias AllowedValues
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	bounds := append([]decimal.Decimal(nil), decoded.Values...)
	for _, interval := range decoded.Intervals {
		bounds = append(bounds, interval.Min, interval.Max)
	}
	for _, b := range bounds {
		if exp := b.Exponent(); exp > codec.MaxExponent || exp < -codec.MaxExponent {
			return fmt.Errorf("%s bound exponent %d out of range", KindAllowedValues, exp)
		}
	}

	*c = AllowedValues(decoded)
	return nil
}

// MarshalJSON implements json.Marshaler
func (c AllowedValues) MarshalJSON() ([]byte, error) {
	type alias AllowedValues
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{KindAllowedValues, alias(c)})
}
