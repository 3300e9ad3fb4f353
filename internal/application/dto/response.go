package dto

import (
	"encoding/json"

	"github.com/reglet-dev/swecommon/internal/domain/services"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// ValidationReport is the result of validating one or more definitions.
type ValidationReport struct {
	ID     values.ReportID `json:"id" yaml:"id"`
	Status values.Status   `json:"status" yaml:"status"`
	Files  []FileReport    `json:"files" yaml:"files"`
}

// FileReport is the validation result of one definition file.
type FileReport struct {
	Source   string          `json:"source" yaml:"source"`
	Version  string          `json:"version,omitempty" yaml:"version,omitempty"`
	Status   values.Status   `json:"status" yaml:"status"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
	Elements []ElementReport `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// ElementReport is the validation result of one element.
type ElementReport struct {
	Identifier string          `json:"identifier" yaml:"identifier"`
	Kind       string          `json:"kind" yaml:"kind"`
	Value      json.RawMessage `json:"value" yaml:"value"`
	Status     values.Status   `json:"status" yaml:"status"`
}

// Counts returns the number of elements per status across all files.
func (r *ValidationReport) Counts() map[values.Status]int {
	counts := make(map[values.Status]int)
	for _, f := range r.Files {
		for _, el := range f.Elements {
			counts[el.Status]++
		}
	}
	return counts
}

// FieldListing is the profile-resolved field table of a definition.
type FieldListing struct {
	Source   string          `json:"source" yaml:"source"`
	Profile  values.Profile  `json:"profile" yaml:"profile"`
	Elements []ElementFields `json:"elements" yaml:"elements"`
}

// ElementFields is the resolved field table of one element.
type ElementFields struct {
	Identifier string                   `json:"identifier" yaml:"identifier"`
	Kind       string                   `json:"kind" yaml:"kind"`
	Fields     []services.ResolvedField `json:"fields" yaml:"fields"`
}

// ValueChange reports a value assignment on one element.
type ValueChange struct {
	Source     string          `json:"source" yaml:"source"`
	Identifier string          `json:"identifier" yaml:"identifier"`
	Kind       string          `json:"kind" yaml:"kind"`
	Before     json.RawMessage `json:"before" yaml:"before"`
	After      json.RawMessage `json:"after" yaml:"after"`
	Changed    bool            `json:"changed" yaml:"changed"`
	Status     values.Status   `json:"status" yaml:"status"`
	Element    json.RawMessage `json:"element" yaml:"element"`
}

// KindListing describes the registered element kinds.
type KindListing struct {
	Kinds []KindInfo `json:"kinds" yaml:"kinds"`
}

// KindInfo is one element kind with its full field table.
type KindInfo struct {
	Name   string                   `json:"name" yaml:"name"`
	Fields []values.FieldDescriptor `json:"fields" yaml:"fields"`
}
