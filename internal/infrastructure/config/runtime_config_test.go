package config

import (
	"runtime"
	"testing"

	"github.com/reglet-dev/swecommon/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, values.ProfileSimpleExpert, cfg.Profile)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.Equal(t, runtime.NumCPU(), cfg.MaxConcurrentFiles)
}

func Test_FromViper_Environment(t *testing.T) {
	t.Setenv("SWE_PROFILE", "value")
	t.Setenv("SWE_FORMAT", "JSON")
	t.Setenv("SWE_STRICT", "true")
	t.Setenv("SWE_MAX_CONCURRENT_FILES", "3")

	cfg, err := FromViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, values.ProfileValue, cfg.Profile)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3, cfg.MaxConcurrentFiles)
}

func Test_FromViper_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown profile", KeyProfile, "simple,novice", "invalid profile: novice"},
		{"unknown format", KeyFormat, "xml", "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.value)

			_, err := FromViper(v)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func Test_RuntimeConfig_ApplyDefaults(t *testing.T) {
	cfg := &RuntimeConfig{Format: FormatYAML, MaxConcurrentFiles: 2}
	cfg.ApplyDefaults()

	assert.Equal(t, values.ProfileSimpleExpert, cfg.Profile)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 2, cfg.MaxConcurrentFiles)
}
