package constraint

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TimeInterval is an inclusive range of time positions.
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AllowedTimes restricts a time element to an enumeration of time positions
// and/or a list of inclusive intervals. Positions are expressed in the
// element's unit of measure. A constraint with neither values nor intervals
// admits every parseable time position.
type AllowedTimes struct {
	Values             []string       `json:"values,omitempty"`
	Intervals          []TimeInterval `json:"intervals,omitempty"`
	SignificantFigures int            `json:"significantFigures,omitempty"`
}

// NewAllowedTimesRange creates a constraint admitting the inclusive range [start, end].
func NewAllowedTimesRange(start, end string) *AllowedTimes {
	return &AllowedTimes{Intervals: []TimeInterval{{Start: start, End: end}}}
}

// Kind implements Constraint
func (c *AllowedTimes) Kind() string {
	return KindAllowedTimes
}

// IsValid implements Constraint
func (c *AllowedTimes) IsValid(value, uom string) bool {
	pos, ok := ParseTimePosition(value, uom)
	if !ok {
		return false
	}

	// significant figures only make sense for numeric positions
	if !IsGregorian(uom) && !withinSignificantFigures(value, c.SignificantFigures) {
		return false
	}

	if len(c.Values) == 0 && len(c.Intervals) == 0 {
		return true
	}

	for _, allowed := range c.Values {
		if p, ok := ParseTimePosition(allowed, uom); ok && p.Equal(pos) {
			return true
		}
	}

	for _, interval := range c.Intervals {
		if inTimeInterval(pos, interval, uom) {
			return true
		}
	}

	return false
}

func inTimeInterval(pos decimal.Decimal, interval TimeInterval, uom string) bool {
	start, ok := ParseTimePosition(interval.Start, uom)
	if !ok {
		return false
	}
	end, ok := ParseTimePosition(interval.End, uom)
	if !ok {
		return false
	}
	return pos.GreaterThanOrEqual(start) && pos.LessThanOrEqual(end)
}

// MarshalJSON implements json.Marshaler
func (c AllowedTimes) MarshalJSON() ([]byte, error) {
	type alias AllowedTimes
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{KindAllowedTimes, alias(c)})
}
