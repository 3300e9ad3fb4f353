package codec

import "fmt"

// ErrorKind classifies a rejected JSON value.
type ErrorKind string

const (
	// KindMalformed means the input is not syntactically valid JSON.
	KindMalformed ErrorKind = "malformed"
	// KindNotPrimitive means the input is an array or object.
	KindNotPrimitive ErrorKind = "not_primitive"
	// KindConversion means the primitive could not be converted to the
	// element's native value.
	KindConversion ErrorKind = "conversion"
)

// InputError is a recoverable rejection of a JSON value. Callers that
// soft-fail log it and keep the previous value.
type InputError struct {
	Cause error
	Kind  ErrorKind
	Input string
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rejected %s input %s: %v", e.Kind, e.Input, e.Cause)
	}
	return fmt.Sprintf("rejected %s input %s", e.Kind, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

func newInputError(kind ErrorKind, raw []byte, cause error) *InputError {
	return &InputError{Kind: kind, Input: truncate(string(raw), 64), Cause: cause}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
