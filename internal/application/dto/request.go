// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"encoding/json"

	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// ValidateRequest encapsulates the inputs of a validation run.
type ValidateRequest struct {
	Paths []string

	// MaxConcurrentFiles limits parallel file validation (0 = no limit)
	MaxConcurrentFiles int
}

// ListFieldsRequest encapsulates the inputs of a field listing.
type ListFieldsRequest struct {
	Path    string
	Profile values.Profile

	// Identifier restricts the listing to one element when set
	Identifier string
}

// SetValueRequest encapsulates a value assignment on one element.
type SetValueRequest struct {
	Path       string
	Identifier string
	Value      json.RawMessage

	// Strict returns rejected input as an error instead of logging it
	Strict bool
}
