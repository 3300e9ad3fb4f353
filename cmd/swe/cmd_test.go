package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefinition = `
version: "1.0.0"
elements:
  - type: Time
    identifier: phenomenonTime
    label: Phenomenon Time
    constraint:
      type: AllowedTimes
      intervals:
        - start: "2010-01-01T00:00:00Z"
          end: "2020-01-01T00:00:00Z"
    value: "2010-05-05T00:00:00Z"
  - type: Count
    identifier: samples
    value: 3
`

func writeDefinition(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definition.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

// runCLI executes the root command and returns its standard output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func Test_ValidateCommand(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCLI(t, "validate", path, "--format", "json", "--profile", "simple,expert")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "valid", report["status"])
	assert.NotEmpty(t, report["id"])
}

func Test_ValidateCommand_Invalid(t *testing.T) {
	doc := "version: \"1.0.0\"\nelements:\n  - type: Text\n    identifier: station\n"
	path := writeDefinition(t, doc)

	out, err := runCLI(t, "validate", path, "--format", "table", "--no-color", "--profile", "simple,expert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 valid, 0 invalid, 1 missing")
	assert.Contains(t, out, "station")
}

func Test_FieldsCommand(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCLI(t, "fields", path, "--format", "json", "--profile", "simple", "--element", "phenomenonTime")
	require.NoError(t, err)

	var listing struct {
		Profile  string `json:"profile"`
		Elements []struct {
			Identifier string `json:"identifier"`
			Fields     []struct {
				Name string `json:"name"`
			} `json:"fields"`
		} `json:"elements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, "simple", listing.Profile)
	require.Len(t, listing.Elements, 1)

	var names []string
	for _, f := range listing.Elements[0].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"label", "description", "constraint"}, names)
}

func Test_FieldsCommand_UnknownProfile(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	_, err := runCLI(t, "fields", path, "--format", "json", "--profile", "novice", "--element", "")
	assert.ErrorContains(t, err, "invalid profile: novice")
}

func Test_SetCommand(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCLI(t, "set", path, "--format", "json", "--profile", "simple,expert",
		"--element", "phenomenonTime", "--json", `"2030-01-01T00:00:00Z"`, "--strict=false")
	require.NoError(t, err)

	var change map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &change))
	assert.Equal(t, "2010-05-05T00:00:00Z", change["before"])
	assert.Equal(t, "2030-01-01T00:00:00Z", change["after"])
	assert.Equal(t, "invalid", change["status"])
}

func Test_SetCommand_StrictRejection(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	_, err := runCLI(t, "set", path, "--format", "json", "--profile", "simple,expert",
		"--element", "samples", "--json", `[1, 2]`, "--strict")
	assert.ErrorContains(t, err, "value rejected for element samples")
}

func Test_KindsCommand(t *testing.T) {
	out, err := runCLI(t, "kinds", "--format", "yaml", "--profile", "simple,expert")
	require.NoError(t, err)

	for _, kind := range []string{"Time", "Quantity", "Count", "Boolean", "Text"} {
		assert.Contains(t, out, "name: "+kind)
	}
}

func Test_VersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "swe version ")
}

func Test_CommonOptions_ApplyToContext(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		opts := CommonOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 50*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		opts := CommonOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}
