package constraint

import (
	"strings"
	"time"

	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/shopspring/decimal"
)

// UOMGregorian is the unit of measure for ISO-8601 calendar time positions.
const UOMGregorian = "http://www.opengis.net/def/uom/ISO-8601/0/Gregorian"

const ucumPrefix = "http://www.opengis.net/def/uom/UCUM/0/"

// Seconds per unit for numeric time units. Numeric time positions are
// offsets from the Unix epoch.
var numericTimeUnits = map[string]decimal.Decimal{
	"ms":  decimal.New(1, -3),
	"s":   decimal.NewFromInt(1),
	"min": decimal.NewFromInt(60),
	"h":   decimal.NewFromInt(3600),
	"d":   decimal.NewFromInt(86400),
}

var gregorianLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// IsGregorian reports whether uom names the ISO-8601 Gregorian calendar.
// Accepts the OGC URI (including the variant spelled with U+2010 instead of
// a hyphen) and the short form "ISO-8601-Gregorian".
func IsGregorian(uom string) bool {
	u := strings.ReplaceAll(strings.TrimSpace(uom), "‐", "-")
	return u == "" || u == UOMGregorian || strings.EqualFold(u, "ISO-8601-Gregorian")
}

// numericTimeUnit returns seconds per unit for a numeric time uom.
func numericTimeUnit(uom string) (decimal.Decimal, bool) {
	code := strings.TrimPrefix(strings.TrimSpace(uom), ucumPrefix)
	scale, ok := numericTimeUnits[code]
	return scale, ok
}

// ParseTimePosition converts a time position expressed in uom to seconds
// since the Unix epoch. It reports false for anything it cannot interpret,
// including unknown units.
func ParseTimePosition(value, uom string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, false
	}

	if IsGregorian(uom) {
		t, ok := parseGregorian(value)
		if !ok {
			return decimal.Zero, false
		}
		return decimal.New(t.Unix(), 0).Add(decimal.New(int64(t.Nanosecond()), -9)), true
	}

	if scale, ok := numericTimeUnit(uom); ok {
		d, err := codec.ParseDecimal(value)
		if err != nil {
			return decimal.Zero, false
		}
		return d.Mul(scale), true
	}

	return decimal.Zero, false
}

func parseGregorian(value string) (time.Time, bool) {
	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
