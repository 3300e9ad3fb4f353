// Package codec converts between the native value of a schema element and
// the single JSON primitive exchanged on the value channel.
//
// JSON null is the absent value in both directions. Arrays and objects are
// never accepted. Every conversion failure is reported as an *InputError so
// element code can log it and keep its previous state.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Null is the JSON encoding of an absent value.
var Null = json.RawMessage("null")

// Codec converts a native value of type T to and from a JSON primitive.
// A nil *T is the absent value.
type Codec[T any] interface {
	ToJSON(v *T) json.RawMessage
	FromJSON(raw json.RawMessage) (*T, error)
}

// Built-in codecs.
var (
	String  Codec[string]          = stringCodec{}
	Decimal Codec[decimal.Decimal] = decimalCodec{}
	Int     Codec[int64]           = intCodec{}
	Bool    Codec[bool]            = boolCodec{}
)

// IsPrimitive reports whether raw is a JSON string, number, boolean or null.
func IsPrimitive(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return false
	}
	switch trimmed[0] {
	case '[', '{':
		return false
	default:
		return true
	}
}

// PrimitiveString returns the string form of a JSON primitive: the decoded
// text of a string, the literal of a number, or "true"/"false". The second
// result is false for JSON null.
func PrimitiveString(raw json.RawMessage) (string, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return "", false, newInputError(KindMalformed, raw, nil)
	}

	switch trimmed[0] {
	case '[', '{':
		return "", false, newInputError(KindNotPrimitive, trimmed, nil)
	case 'n':
		return "", false, nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, newInputError(KindMalformed, trimmed, err)
		}
		return s, true, nil
	default:
		// numbers and booleans keep their literal text
		return string(trimmed), true, nil
	}
}

type stringCodec struct{}

func (stringCodec) ToJSON(v *string) json.RawMessage {
	if v == nil {
		return Null
	}
	data, err := json.Marshal(*v)
	if err != nil {
		return Null
	}
	return data
}

func (stringCodec) FromJSON(raw json.RawMessage) (*string, error) {
	s, ok, err := PrimitiveString(raw)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

type decimalCodec struct{}

func (decimalCodec) ToJSON(v *decimal.Decimal) json.RawMessage {
	if v == nil {
		return Null
	}
	return json.RawMessage(DecimalLiteral(*v))
}

func (decimalCodec) FromJSON(raw json.RawMessage) (*decimal.Decimal, error) {
	s, ok, err := PrimitiveString(raw)
	if err != nil || !ok {
		return nil, err
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return nil, newInputError(KindConversion, raw, err)
	}
	return &d, nil
}

// MaxExponent bounds the decimal exponent accepted from input in either
// direction. Literals such as 1e-20000000 would otherwise print as
// millions of digits.
const MaxExponent = 1000

// ParseDecimal parses a decimal literal, rejecting exponents beyond
// MaxExponent.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Zero, fmt.Errorf("exponent %d out of range [-%d, %d]", exp, MaxExponent, MaxExponent)
	}
	return d, nil
}

// DecimalLiteral formats d keeping the fractional digits it was parsed
// with, so "1.50" stays "1.50".
func DecimalLiteral(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

type intCodec struct{}

func (intCodec) ToJSON(v *int64) json.RawMessage {
	if v == nil {
		return Null
	}
	return json.RawMessage(strconv.FormatInt(*v, 10))
}

func (intCodec) FromJSON(raw json.RawMessage) (*int64, error) {
	s, ok, err := PrimitiveString(raw)
	if err != nil || !ok {
		return nil, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, newInputError(KindConversion, raw, err)
	}
	return &n, nil
}

type boolCodec struct{}

func (boolCodec) ToJSON(v *bool) json.RawMessage {
	if v == nil {
		return Null
	}
	return json.RawMessage(strconv.FormatBool(*v))
}

func (boolCodec) FromJSON(raw json.RawMessage) (*bool, error) {
	s, ok, err := PrimitiveString(raw)
	if err != nil || !ok {
		return nil, err
	}
	var b bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		return nil, newInputError(KindConversion, raw, strconv.ErrSyntax)
	}
	return &b, nil
}
