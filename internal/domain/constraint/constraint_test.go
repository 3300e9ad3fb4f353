package constraint

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTimePosition(t *testing.T) {
	tests := []struct {
		name  string
		value string
		uom   string
		want  string
		ok    bool
	}{
		{"date", "1970-01-02", UOMGregorian, "86400", true},
		{"date time utc", "1970-01-01T00:01:00Z", UOMGregorian, "60", true},
		{"date time offset", "1970-01-01T01:00:00+01:00", UOMGregorian, "0", true},
		{"fraction", "1970-01-01T00:00:00.5Z", UOMGregorian, "0.5", true},
		{"no zone", "1970-01-01T00:00:10", UOMGregorian, "10", true},
		{"short uom", "1970-01-02", "ISO-8601-Gregorian", "86400", true},
		{"unicode hyphen uom", "1970-01-02", "http://www.opengis.net/def/uom/ISO‐8601/0/Gregorian", "86400", true},
		{"seconds", "90", "s", "90", true},
		{"minutes ucum", "1.5", "http://www.opengis.net/def/uom/UCUM/0/min", "90", true},
		{"millis", "1500", "ms", "1.5", true},
		{"garbage", "yesterday", UOMGregorian, "", false},
		{"empty", "", UOMGregorian, "", false},
		{"numeric garbage", "abc", "s", "", false},
		{"unknown uom", "10", "furlong", "", false},
		{"exponent out of range", "1e-20000000", "s", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimePosition(tt.value, tt.uom)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
			}
		})
	}
}

func Test_AllowedTimes_Range(t *testing.T) {
	c := NewAllowedTimesRange("2000-01-01", "2020-01-01")

	assert.True(t, c.IsValid("2010-05-05", "ISO-8601-Gregorian"))
	assert.True(t, c.IsValid("2000-01-01", "ISO-8601-Gregorian"), "start is inclusive")
	assert.True(t, c.IsValid("2020-01-01T00:00:00Z", "ISO-8601-Gregorian"), "end is inclusive")
	assert.False(t, c.IsValid("2030-01-01", "ISO-8601-Gregorian"))
	assert.False(t, c.IsValid("1999-12-31T23:59:59Z", "ISO-8601-Gregorian"))
	assert.False(t, c.IsValid("not a time", "ISO-8601-Gregorian"))
}

func Test_AllowedTimes_Values(t *testing.T) {
	c := &AllowedTimes{Values: []string{"2001-01-01", "2002-02-02T12:00:00Z"}}

	assert.True(t, c.IsValid("2001-01-01T00:00:00Z", UOMGregorian))
	assert.True(t, c.IsValid("2002-02-02T13:00:00+01:00", UOMGregorian))
	assert.False(t, c.IsValid("2001-01-02", UOMGregorian))
}

func Test_AllowedTimes_Empty(t *testing.T) {
	c := &AllowedTimes{}

	assert.True(t, c.IsValid("2010-05-05", UOMGregorian))
	assert.False(t, c.IsValid("2010-13-45", UOMGregorian))
}

func Test_AllowedTimes_Numeric(t *testing.T) {
	c := &AllowedTimes{
		Intervals:          []TimeInterval{{Start: "0", End: "3600"}},
		SignificantFigures: 3,
	}

	assert.True(t, c.IsValid("120", "s"))
	assert.False(t, c.IsValid("1200.5", "s"), "too many significant figures")
	assert.False(t, c.IsValid("3601", "s"))
	assert.True(t, c.IsValid("0.5", "h"), "bounds are in the element unit")
}

func Test_AllowedTimes_BadBoundsNeverPanic(t *testing.T) {
	c := &AllowedTimes{Intervals: []TimeInterval{{Start: "garbage", End: "2020-01-01"}}}
	assert.False(t, c.IsValid("2010-01-01", UOMGregorian))
}

func Test_AllowedValues(t *testing.T) {
	c := &AllowedValues{
		Values: []decimal.Decimal{decimal.NewFromInt(-1)},
		Intervals: []ValueInterval{
			{Min: decimal.NewFromInt(0), Max: decimal.RequireFromString("100.5")},
		},
	}

	assert.True(t, c.IsValid("-1", "Cel"))
	assert.True(t, c.IsValid("100.5", "Cel"))
	assert.True(t, c.IsValid("0", "Cel"))
	assert.False(t, c.IsValid("-0.5", "Cel"))
	assert.False(t, c.IsValid("101", "Cel"))
	assert.False(t, c.IsValid("NaN", "Cel"))
}

func Test_AllowedValues_ExponentBound(t *testing.T) {
	tests := []struct {
		name  string
		c     *AllowedValues
		value string
		want  bool
	}{
		{"tiny exponent without bounds", &AllowedValues{}, "1e-20000000", false},
		{"huge exponent without bounds", &AllowedValues{}, "1e20000000", false},
		{"tiny exponent inside interval", &AllowedValues{
			Intervals: []ValueInterval{{Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(1)}},
		}, "1e-20000000", false},
		{"small exponent inside interval", &AllowedValues{
			Intervals: []ValueInterval{{Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(1)}},
		}, "1e-20", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsValid(tt.value, ""))
		})
	}
}

func Test_AllowedValues_SignificantFigures(t *testing.T) {
	c := &AllowedValues{SignificantFigures: 2}

	assert.True(t, c.IsValid("0.0012", ""))
	assert.True(t, c.IsValid("-4.5", ""))
	assert.False(t, c.IsValid("4.50", ""))
}

func Test_AllowedTokens(t *testing.T) {
	c, err := NewAllowedTokens([]string{"on", "off"}, `[A-Z]{3}-\d+`)
	require.NoError(t, err)

	assert.True(t, c.IsValid("on", ""))
	assert.True(t, c.IsValid("ABC-12", ""))
	assert.False(t, c.IsValid("xABC-12", ""), "pattern matches the whole value")
	assert.False(t, c.IsValid("standby", ""))

	_, err = NewAllowedTokens(nil, "(")
	assert.Error(t, err)
}

func Test_Expression(t *testing.T) {
	c, err := NewExpression(`is_number && number >= 0 && number < 100`)
	require.NoError(t, err)

	assert.True(t, c.IsValid("42", "Cel"))
	assert.False(t, c.IsValid("142", "Cel"))
	assert.False(t, c.IsValid("warm", "Cel"))
	assert.False(t, c.IsValid("1e-20000000", "Cel"), "out of range exponents are not numbers")

	timed, err := NewExpression(`is_time && time.Year() >= 2000`)
	require.NoError(t, err)
	assert.True(t, timed.IsValid("2010-05-05", UOMGregorian))
	assert.False(t, timed.IsValid("1999-05-05", UOMGregorian))

	_, err = NewExpression(`number +`)
	assert.Error(t, err)
	_, err = NewExpression(`value`)
	assert.Error(t, err, "non-boolean expressions are rejected")
	_, err = NewExpression("")
	assert.Error(t, err)
}

func Test_Expression_ZeroValueIsInvalid(t *testing.T) {
	c := &Expression{Source: "true"}
	assert.False(t, c.IsValid("anything", ""))
}

func Test_Registry_Decode(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name string
		json string
		kind string
	}{
		{"allowed times", `{"type":"AllowedTimes","intervals":[{"start":"2000-01-01","end":"2020-01-01"}]}`, KindAllowedTimes},
		{"allowed values", `{"type":"AllowedValues","values":[1,"2.5"]}`, KindAllowedValues},
		{"allowed tokens", `{"type":"AllowedTokens","pattern":"[a-z]+"}`, KindAllowedTokens},
		{"expression", `{"type":"Expression","expression":"length < 5"}`, KindExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := reg.Decode([]byte(tt.json))
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tt.kind, c.Kind())

			again, err := reg.Decode([]byte(Canonical(c)))
			require.NoError(t, err)
			assert.True(t, Equal(c, again))
		})
	}
}

func Test_Registry_DecodeErrors(t *testing.T) {
	reg := DefaultRegistry()

	c, err := reg.Decode([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = reg.Decode([]byte(`{"values":[]}`))
	assert.ErrorContains(t, err, "type is required")

	_, err = reg.Decode([]byte(`{"type":"Nope"}`))
	assert.ErrorContains(t, err, "unknown constraint type")

	_, err = reg.Decode([]byte(`{"type":"Expression","expression":"1 +"}`))
	assert.Error(t, err)

	_, err = reg.Decode([]byte(`{"type":"AllowedValues","values":[1e-20000000]}`))
	assert.ErrorContains(t, err, "out of range")

	_, err = reg.Decode([]byte(`{"type":"AllowedValues","intervals":[{"min":0,"max":1e20000000}]}`))
	assert.ErrorContains(t, err, "out of range")
}

type oddConstraint struct{}

func (oddConstraint) Kind() string { return "Odd" }

func (oddConstraint) IsValid(value, _ string) bool {
	d, err := decimal.NewFromString(value)
	return err == nil && d.IsInteger() && !d.Mod(decimal.NewFromInt(2)).IsZero()
}

func Test_Registry_Register(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("Odd", func() Constraint { return &oddConstraint{} }))
	assert.Error(t, reg.Register("Odd", func() Constraint { return &oddConstraint{} }))
	assert.Equal(t, []string{"Odd"}, reg.Kinds())

	c, err := reg.Decode([]byte(`{"type":"Odd"}`))
	require.NoError(t, err)
	assert.True(t, c.IsValid("3", ""))
	assert.False(t, c.IsValid("4", ""))
}

func Test_Equal(t *testing.T) {
	a := NewAllowedTimesRange("2000-01-01", "2020-01-01")
	b := NewAllowedTimesRange("2000-01-01", "2020-01-01")
	c := NewAllowedTimesRange("2000-01-01", "2021-01-01")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"AllowedTimes","intervals":[{"start":"2000-01-01","end":"2020-01-01"}]}`, string(data))
}
