package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsPrimitive(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`"text"`, true},
		{`42`, true},
		{`-1.5e3`, true},
		{`true`, true},
		{`null`, true},
		{` "padded" `, true},
		{`[]`, false},
		{`{"a":1}`, false},
		{``, false},
		{`not json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrimitive(json.RawMessage(tt.input)))
		})
	}
}

func Test_PrimitiveString(t *testing.T) {
	s, ok, err := PrimitiveString(json.RawMessage(`"2010-05-05"`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2010-05-05", s)

	s, ok, err = PrimitiveString(json.RawMessage(`42`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok, err = PrimitiveString(json.RawMessage(`false`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", s)

	_, ok, err = PrimitiveString(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_PrimitiveString_Rejects(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{`[]`, KindNotPrimitive},
		{`{"value":"x"}`, KindNotPrimitive},
		{`{broken`, KindMalformed},
		{``, KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := PrimitiveString(json.RawMessage(tt.input))
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.kind, inputErr.Kind)
		})
	}
}

func Test_StringCodec_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "2010-05-05", "quoted \"text\"", "null", "ünïcode"} {
		t.Run(s, func(t *testing.T) {
			raw := String.ToJSON(&s)
			got, err := String.FromJSON(raw)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, s, *got)
		})
	}

	assert.Equal(t, "null", string(String.ToJSON(nil)))
	got, err := String.FromJSON(Null)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func Test_DecimalCodec(t *testing.T) {
	got, err := Decimal.FromJSON(json.RawMessage(`1.50`))
	require.NoError(t, err)
	assert.Equal(t, "1.50", string(Decimal.ToJSON(got)))

	got, err = Decimal.FromJSON(json.RawMessage(`"-273.15"`))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("-273.15")))

	_, err = Decimal.FromJSON(json.RawMessage(`"warm"`))
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, KindConversion, inputErr.Kind)
}

func Test_DecimalCodec_ExponentBound(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"tiny exponent", `1e-20000000`, true},
		{"huge exponent", `1e20000000`, true},
		{"tiny exponent as string", `"1e-20000000"`, true},
		{"just past bound", `1e-1001`, true},
		{"at lower bound", `1e-1000`, false},
		{"at upper bound", `1e1000`, false},
		{"ordinary", `21.50`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decimal.FromJSON(json.RawMessage(tt.raw))
			if !tt.wantErr {
				require.NoError(t, err)
				require.NotNil(t, got)
				return
			}
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, KindConversion, inputErr.Kind)
			assert.Contains(t, err.Error(), "out of range")
			assert.Nil(t, got)
		})
	}
}

func Test_ParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 1.50 ")
	require.NoError(t, err)
	assert.Equal(t, "1.50", DecimalLiteral(d))

	_, err = ParseDecimal("1e-20000000")
	assert.Error(t, err)

	_, err = ParseDecimal("abc")
	assert.Error(t, err)
}

func Test_IntCodec(t *testing.T) {
	got, err := Int.FromJSON(json.RawMessage(`42`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), *got)
	assert.Equal(t, "42", string(Int.ToJSON(got)))

	for _, bad := range []string{`4.2`, `"four"`, `99999999999999999999`, `true`} {
		t.Run(bad, func(t *testing.T) {
			_, err := Int.FromJSON(json.RawMessage(bad))
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, KindConversion, inputErr.Kind)
		})
	}
}

func Test_BoolCodec(t *testing.T) {
	got, err := Bool.FromJSON(json.RawMessage(`true`))
	require.NoError(t, err)
	assert.True(t, *got)

	got, err = Bool.FromJSON(json.RawMessage(`"FALSE"`))
	require.NoError(t, err)
	assert.False(t, *got)
	assert.Equal(t, "false", string(Bool.ToJSON(got)))

	_, err = Bool.FromJSON(json.RawMessage(`1`))
	assert.Error(t, err)
}

func Test_DecimalLiteral(t *testing.T) {
	assert.Equal(t, "1.50", DecimalLiteral(decimal.RequireFromString("1.50")))
	assert.Equal(t, "1200", DecimalLiteral(decimal.RequireFromString("1.2e3")))
	assert.Equal(t, "7", DecimalLiteral(decimal.NewFromInt(7)))
}
