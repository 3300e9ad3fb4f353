// Package config provides infrastructure for loading element definitions and
// runtime settings. This package handles YAML parsing, file I/O and
// structural validation.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/reglet-dev/swecommon/internal/domain/entities"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/definition.schema.json
var definitionSchema []byte

const definitionSchemaURL = "definition.schema.json"

// SupportedVersions is the semver range of definition documents this loader reads.
const SupportedVersions = "^1"

// DefinitionLoader loads element definition documents from YAML or JSON.
type DefinitionLoader struct {
	registry  *element.Registry
	schema    *jsonschema.Schema
	supported *semver.Constraints
}

// NewDefinitionLoader creates a loader decoding elements through registry.
// A nil registry means element.DefaultRegistry().
func NewDefinitionLoader(registry *element.Registry) (*DefinitionLoader, error) {
	if registry == nil {
		registry = element.DefaultRegistry()
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(definitionSchemaURL, bytes.NewReader(definitionSchema)); err != nil {
		return nil, fmt.Errorf("failed to add definition schema: %w", err)
	}
	schema, err := compiler.Compile(definitionSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile definition schema: %w", err)
	}

	supported, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return nil, fmt.Errorf("invalid supported version range: %w", err)
	}

	return &DefinitionLoader{
		registry:  registry,
		schema:    schema,
		supported: supported,
	}, nil
}

// Load loads and decodes a definition from a file.
func (l *DefinitionLoader) Load(path string) (*entities.Definition, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open definition directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file, path)
}

// LoadFromReader loads a definition from an io.Reader. source names the
// document in errors and in the returned definition.
func (l *DefinitionLoader) LoadFromReader(r io.Reader, source string) (*entities.Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", source, err)
	}

	jsonData, err := toJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition %s: %w", source, err)
	}

	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode definition %s: %w", source, err)
	}

	if err := l.schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("definition %s: %w", source, formatSchemaValidationError(validationErr))
		}
		return nil, fmt.Errorf("definition %s: %w", source, err)
	}

	var raw struct {
		Version  json.RawMessage   `json:"version"`
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition %s: %w", source, err)
	}

	version, err := l.checkVersion(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", source, err)
	}

	def := &entities.Definition{
		Source:   source,
		Version:  version.Original(),
		Elements: make([]element.Element, 0, len(raw.Elements)),
	}
	for i, data := range raw.Elements {
		el, err := l.registry.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("definition %s: element %d: %w", source, i, err)
		}
		def.Elements = append(def.Elements, el)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition %s: %w", source, err)
	}

	return def, nil
}

func (l *DefinitionLoader) checkVersion(raw json.RawMessage) (*semver.Version, error) {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	version, err := semver.NewVersion(text)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", text, err)
	}
	if !l.supported.Check(version) {
		return nil, fmt.Errorf("unsupported version %s (supported: %s)", version.Original(), SupportedVersions)
	}
	return version, nil
}

// formatSchemaValidationError formats a JSON Schema validation error into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed")
	}

	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
