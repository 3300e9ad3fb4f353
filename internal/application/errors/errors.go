// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates a definition document failed structural validation.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ElementNotFoundError indicates no element with the given identifier exists
// in a loaded definition.
type ElementNotFoundError struct {
	Identifier string
	Source     string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %q not found in %s", e.Identifier, e.Source)
}

// NewElementNotFoundError creates a new element lookup error.
func NewElementNotFoundError(identifier, source string) *ElementNotFoundError {
	return &ElementNotFoundError{
		Identifier: identifier,
		Source:     source,
	}
}

// ValueRejectedError indicates a strict value assignment was refused.
type ValueRejectedError struct {
	Cause      error
	Identifier string
}

func (e *ValueRejectedError) Error() string {
	return fmt.Sprintf("value rejected for element %s: %v", e.Identifier, e.Cause)
}

func (e *ValueRejectedError) Unwrap() error {
	return e.Cause
}

// NewValueRejectedError creates a new value rejection error.
func NewValueRejectedError(identifier string, cause error) *ValueRejectedError {
	return &ValueRejectedError{
		Identifier: identifier,
		Cause:      cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
