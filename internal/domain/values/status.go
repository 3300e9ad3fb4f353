package values

import (
	"fmt"
)

// Status is the validity outcome of one element's value.
type Status string

const (
	// StatusValid indicates a value is set and admitted by the constraint
	StatusValid Status = "valid"
	// StatusInvalid indicates a value is set but the constraint rejects it
	StatusInvalid Status = "invalid"
	// StatusMissing indicates no value is set
	StatusMissing Status = "missing"
)

// StatusOf derives the status from whether a value is set and valid.
func StatusOf(hasValue, valid bool) Status {
	switch {
	case !hasValue:
		return StatusMissing
	case valid:
		return StatusValid
	default:
		return StatusInvalid
	}
}

// Precedence returns the numeric precedence of this status.
// Higher values dominate when statuses are aggregated.
//
// Precedence: Invalid (2) > Missing (1) > Valid (0)
func (s Status) Precedence() int {
	switch s {
	case StatusInvalid:
		return 2
	case StatusMissing:
		return 1
	case StatusValid:
		return 0
	default:
		return -1
	}
}

// IsValid returns true if this status represents an admissible value
func (s Status) IsValid() bool {
	return s == StatusValid
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusValid, StatusInvalid, StatusMissing:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}

// Worst returns the status with the highest precedence, or StatusValid for
// an empty list.
func Worst(statuses ...Status) Status {
	worst := StatusValid
	for _, s := range statuses {
		if s.Precedence() > worst.Precedence() {
			worst = s
		}
	}
	return worst
}
