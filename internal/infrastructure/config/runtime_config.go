package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/reglet-dev/swecommon/internal/domain/values"
	"github.com/spf13/viper"
)

// Configuration keys, shared by the config file, SWE_* environment
// variables and command flags.
const (
	KeyProfile            = "profile"
	KeyFormat             = "format"
	KeyStrict             = "strict"
	KeyMaxConcurrentFiles = "max_concurrent_files"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "SWE"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// RuntimeConfig aggregates all runtime configuration.
// This is a value object that flows through the system.
type RuntimeConfig struct {
	// Presentation
	Profile values.Profile
	Format  string

	// Value assignment
	Strict bool

	// Concurrency
	MaxConcurrentFiles int
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyProfile, values.ProfileSimpleExpert.String())
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyMaxConcurrentFiles, 0)
}

// FromViper creates RuntimeConfig from the settings held by v.
func FromViper(v *viper.Viper) (*RuntimeConfig, error) {
	profile, err := values.ParseProfile(v.GetString(KeyProfile))
	if err != nil {
		return nil, fmt.Errorf("invalid %s setting: %w", KeyProfile, err)
	}

	r := &RuntimeConfig{
		Profile:            profile,
		Format:             strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Strict:             v.GetBool(KeyStrict),
		MaxConcurrentFiles: v.GetInt(KeyMaxConcurrentFiles),
	}
	r.ApplyDefaults()

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ApplyDefaults applies defaults for zero values.
func (r *RuntimeConfig) ApplyDefaults() {
	if r.Profile.IsEmpty() {
		r.Profile = values.ProfileSimpleExpert
	}
	if r.Format == "" {
		r.Format = FormatTable
	}
	if r.MaxConcurrentFiles <= 0 {
		r.MaxConcurrentFiles = runtime.NumCPU()
	}
}

// Validate checks the settings that cannot be defaulted.
func (r *RuntimeConfig) Validate() error {
	switch r.Format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (supported: table, json, yaml)", r.Format)
	}
}

// NewViper creates a viper instance reading SWE_* environment variables,
// with defaults registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}
