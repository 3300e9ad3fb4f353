package output

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/swecommon/internal/application/dto"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatReport writes the validation report as YAML.
func (f *YAMLFormatter) FormatReport(report *dto.ValidationReport) error {
	return f.write(report)
}

// FormatFields writes the field listing as YAML.
func (f *YAMLFormatter) FormatFields(listing *dto.FieldListing) error {
	return f.write(listing)
}

// FormatChange writes the value change as YAML.
func (f *YAMLFormatter) FormatChange(change *dto.ValueChange) error {
	return f.write(change)
}

// FormatKinds writes the kind listing as YAML.
func (f *YAMLFormatter) FormatKinds(listing *dto.KindListing) error {
	return f.write(listing)
}

// write goes through JSON first so embedded JSON values and text
// marshalers render the same way in both formats.
func (f *YAMLFormatter) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return err
	}

	_, err = f.writer.Write(out)
	return err
}
