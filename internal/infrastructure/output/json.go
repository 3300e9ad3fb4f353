package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/swecommon/internal/application/dto"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatReport writes the validation report as JSON.
func (f *JSONFormatter) FormatReport(report *dto.ValidationReport) error {
	return f.write(report)
}

// FormatFields writes the field listing as JSON.
func (f *JSONFormatter) FormatFields(listing *dto.FieldListing) error {
	return f.write(listing)
}

// FormatChange writes the value change as JSON.
func (f *JSONFormatter) FormatChange(change *dto.ValueChange) error {
	return f.write(change)
}

// FormatKinds writes the kind listing as JSON.
func (f *JSONFormatter) FormatKinds(listing *dto.KindListing) error {
	return f.write(listing)
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	if _, err = f.writer.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
