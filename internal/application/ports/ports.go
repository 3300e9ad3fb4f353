// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/reglet-dev/swecommon/internal/domain/entities"
)

// DefinitionLoader loads element definitions from storage.
type DefinitionLoader interface {
	Load(path string) (*entities.Definition, error)
}

// ElementKinds enumerates the element kinds known to the system.
type ElementKinds interface {
	Kinds() []string
	New(kind string) (element.Element, error)
}

// FormatterOptions configures output formatters.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatter formats use case results.
type OutputFormatter interface {
	FormatReport(report *dto.ValidationReport) error
	FormatFields(listing *dto.FieldListing) error
	FormatChange(change *dto.ValueChange) error
	FormatKinds(listing *dto.KindListing) error
}
