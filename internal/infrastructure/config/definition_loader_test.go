package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reglet-dev/swecommon/internal/domain/constraint"
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDefinition = `
version: "1.2.0"
elements:
  - type: Time
    identifier: phenomenonTime
    label: Phenomenon Time
    constraint:
      type: AllowedTimes
      intervals:
        - start: "2024-01-01T00:00:00Z"
          end: "2024-12-31T23:59:59Z"
    value: "2024-06-01T12:00:00Z"
  - type: Quantity
    identifier: temperature
    uom: Cel
    value: 21.50
  - type: Count
    identifier: samples
    value: 12
  - type: Boolean
    identifier: calibrated
    value: true
  - type: Text
    identifier: station
`

func newLoader(t *testing.T) *DefinitionLoader {
	t.Helper()
	loader, err := NewDefinitionLoader(nil)
	require.NoError(t, err)
	return loader
}

func Test_DefinitionLoader_LoadFromReader(t *testing.T) {
	def, err := newLoader(t).LoadFromReader(strings.NewReader(validDefinition), "inline.yaml")
	require.NoError(t, err)

	assert.Equal(t, "inline.yaml", def.Source)
	assert.Equal(t, "1.2.0", def.Version)
	require.Len(t, def.Elements, 5)

	tm, ok := def.Find("phenomenonTime").(*element.Time)
	require.True(t, ok)
	assert.Equal(t, "Phenomenon Time", tm.Label)
	assert.Equal(t, constraint.UOMGregorian, tm.UOM)
	require.NotNil(t, tm.Constraint)
	assert.Equal(t, constraint.KindAllowedTimes, tm.Constraint.Kind())
	assert.True(t, tm.ValueIsValid())

	assert.JSONEq(t, `12`, string(def.Find("samples").ValueJSON()))
	assert.JSONEq(t, `true`, string(def.Find("calibrated").ValueJSON()))
	assert.False(t, def.Find("station").ValueIsValid())
}

func Test_DefinitionLoader_AcceptsJSON(t *testing.T) {
	doc := `{"version": "1.0.0", "elements": [{"type": "Text", "identifier": "name", "value": "abc"}]}`

	def, err := newLoader(t).LoadFromReader(strings.NewReader(doc), "inline.json")
	require.NoError(t, err)
	assert.JSONEq(t, `"abc"`, string(def.Find("name").ValueJSON()))
}

func Test_DefinitionLoader_KeepsDecimalLiterals(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValue string
		wantValid bool
	}{
		{
			name: "yaml trailing zero",
			doc: `
version: "1.0.0"
elements:
  - type: Quantity
    identifier: temperature
    constraint:
      type: AllowedValues
      significantFigures: 3
    value: 21.50
`,
			wantValue: `21.50`,
			wantValid: false,
		},
		{
			name: "json trailing zero",
			doc: `{"version": "1.0.0", "elements": [{"type": "Quantity", "identifier": "temperature",
				"constraint": {"type": "AllowedValues", "significantFigures": 3}, "value": 21.50}]}`,
			wantValue: `21.50`,
			wantValid: false,
		},
		{
			name: "yaml within significant figures",
			doc: `
version: "1.0.0"
elements:
  - type: Quantity
    identifier: temperature
    constraint:
      type: AllowedValues
      significantFigures: 4
    value: 21.50
`,
			wantValue: `21.50`,
			wantValid: true,
		},
		{
			name: "yaml beyond float64 precision",
			doc: `
version: "1.0.0"
elements:
  - type: Quantity
    identifier: temperature
    value: 0.12345678901234567890123
`,
			wantValue: `0.12345678901234567890123`,
			wantValid: true,
		},
		{
			name: "yaml flow mapping",
			doc: `{version: "1.0.0", elements: [{type: Quantity, identifier: temperature, value: 1.000}]}`,
			wantValue: `1.000`,
			wantValid: true,
		},
		{
			name: "yaml anchor",
			doc: `
version: "1.0.0"
elements:
  - &base
    type: Quantity
    identifier: temperature
    value: 2.5
  - type: Text
    identifier: other
    value: abc
`,
			wantValue: `2.5`,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := newLoader(t).LoadFromReader(strings.NewReader(tt.doc), "inline")
			require.NoError(t, err)

			el := def.Find("temperature")
			require.NotNil(t, el)
			assert.Equal(t, tt.wantValue, string(el.ValueJSON()))
			assert.Equal(t, tt.wantValid, el.ValueIsValid())
		})
	}
}

func Test_toJSON(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		exact bool
	}{
		{"json passthrough", `{"a": 1.10}`, `{"a": 1.10}`, true},
		{"yaml number literal", "a: 1.10\nb: -3\n", `{"a":1.10,"b":-3}`, true},
		{"yaml only spellings", "a: 0x1F\nb: .5\nc: +2\n", `{"a":31,"b":0.5,"c":2}`, false},
		{"quoted number stays string", "a: \"1.10\"\n", `{"a":"1.10"}`, true},
		{"scalars", "a: true\nb: null\nc: text\nd: [1, x]\n", `{"a":true,"b":null,"c":"text","d":[1,"x"]}`, false},
		{"block literal", "a: |\n  line\n", `{"a":"line\n"}`, false},
		{"alias falls back", "a: &x 1\nb: *x\n", `{"a":1,"b":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toJSON([]byte(tt.in))
			require.NoError(t, err)
			if tt.exact {
				assert.Equal(t, tt.want, string(got))
				return
			}
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func Test_DefinitionLoader_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing version",
			doc:     "elements: []\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "unsupported major version",
			doc:     "version: \"2.0.0\"\nelements: []\n",
			wantErr: "unsupported version 2.0.0",
		},
		{
			name:    "malformed version",
			doc:     "version: \"one\"\nelements: []\n",
			wantErr: "invalid version",
		},
		{
			name:    "unknown member",
			doc:     "version: \"1.0.0\"\nelements: []\nextra: 1\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "element without identifier",
			doc:     "version: \"1.0.0\"\nelements:\n  - type: Time\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "object value",
			doc:     "version: \"1.0.0\"\nelements:\n  - type: Text\n    identifier: a\n    value: {x: 1}\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "unknown element type",
			doc:     "version: \"1.0.0\"\nelements:\n  - type: Vector\n    identifier: a\n",
			wantErr: "unknown element type: Vector",
		},
		{
			name:    "unknown constraint type",
			doc:     "version: \"1.0.0\"\nelements:\n  - type: Time\n    identifier: a\n    constraint:\n      type: Nope\n",
			wantErr: "Nope",
		},
		{
			name:    "duplicate identifier",
			doc:     "version: \"1.0.0\"\nelements:\n  - type: Text\n    identifier: a\n  - type: Count\n    identifier: a\n",
			wantErr: "duplicate element identifier: a",
		},
		{
			name:    "not yaml",
			doc:     "version: [\n",
			wantErr: "failed to parse definition",
		},
	}

	loader := newLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadFromReader(strings.NewReader(tt.doc), "test.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "test.yaml")
		})
	}
}

func Test_DefinitionLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "definition.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDefinition), 0o600))

	def, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, def.Source)
	assert.Len(t, def.Elements, 5)
}

func Test_DefinitionLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open definition")
}
