package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats results as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", 80), colorGray)
}

// FormatReport writes the validation report.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatReport(report *dto.ValidationReport) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Report: %s\n", report.ID.String())
	fmt.Fprintln(f.writer)

	for _, file := range report.Files {
		symbol, color := f.getStatusInfo(file.Status)
		header := file.Source
		if file.Version != "" {
			header += " (v" + file.Version + ")"
		}
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize(symbol, color), f.colorize(header, colorBold))

		if file.Error != "" {
			for _, line := range strings.Split(file.Error, "\n") {
				fmt.Fprintf(f.writer, "  %s\n", f.colorize(line, colorRed))
			}
		}

		for _, el := range file.Elements {
			symbol, color := f.getStatusInfo(el.Status)
			fmt.Fprintf(f.writer, "  %s %-24s %-10s %s\n",
				f.colorize(symbol, color), el.Identifier, f.colorize(el.Kind, colorCyan), string(el.Value))
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, f.rule())
	f.formatSummary(report)
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(report *dto.ValidationReport) {
	counts := report.Counts()
	total := counts[values.StatusValid] + counts[values.StatusInvalid] + counts[values.StatusMissing]

	fmt.Fprintf(f.writer, "Summary: %d elements in %d files: %s valid, %s invalid, %s missing\n",
		total, len(report.Files),
		f.colorize(fmt.Sprint(counts[values.StatusValid]), colorGreen),
		f.colorize(fmt.Sprint(counts[values.StatusInvalid]), colorRed),
		f.colorize(fmt.Sprint(counts[values.StatusMissing]), colorYellow),
	)

	symbol, color := f.getStatusInfo(report.Status)
	fmt.Fprintf(f.writer, "Status: %s %s\n", f.colorize(symbol, color), f.colorize(strings.ToUpper(string(report.Status)), color))
}

// FormatFields writes the resolved field table of every element.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatFields(listing *dto.FieldListing) error {
	fmt.Fprintf(f.writer, "Definition: %s\n", listing.Source)
	fmt.Fprintf(f.writer, "Profile: %s\n", listing.Profile.String())
	fmt.Fprintln(f.writer, f.rule())

	for _, el := range listing.Elements {
		fmt.Fprintf(f.writer, "%s (%s)\n", f.colorize(el.Identifier, colorBold), f.colorize(el.Kind, colorCyan))
		if len(el.Fields) == 0 {
			fmt.Fprintln(f.writer, "  no visible fields")
		}
		for _, field := range el.Fields {
			var flags []string
			if field.Required {
				flags = append(flags, "required")
			}
			if field.Editable {
				flags = append(flags, "editable")
			}
			fmt.Fprintf(f.writer, "  %-16s %-22s %s\n", field.Name, field.Label, f.colorize(strings.Join(flags, ","), colorGray))
		}
		fmt.Fprintln(f.writer)
	}
	return nil
}

// FormatChange writes the outcome of a value assignment.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatChange(change *dto.ValueChange) error {
	symbol, color := f.getStatusInfo(change.Status)

	fmt.Fprintf(f.writer, "%s %s (%s) in %s\n",
		f.colorize(symbol, color), f.colorize(change.Identifier, colorBold), change.Kind, change.Source)
	fmt.Fprintf(f.writer, "  Before: %s\n", string(change.Before))
	fmt.Fprintf(f.writer, "  After:  %s\n", string(change.After))
	if !change.Changed {
		fmt.Fprintf(f.writer, "  %s\n", f.colorize("value unchanged", colorYellow))
	}
	fmt.Fprintf(f.writer, "  Status: %s\n", f.colorize(strings.ToUpper(string(change.Status)), color))
	return nil
}

// FormatKinds writes the registered kinds with their field tables.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatKinds(listing *dto.KindListing) error {
	for _, kind := range listing.Kinds {
		fmt.Fprintln(f.writer, f.colorize(kind.Name, colorBold))
		for _, field := range kind.Fields {
			fmt.Fprintf(f.writer, "  %-16s visible: %-20s editable: %s\n",
				field.Name, field.Visible.String(), field.Editable.String())
		}
		fmt.Fprintln(f.writer)
	}
	return nil
}

// getStatusInfo returns the symbol and color for a status.
func (f *TableFormatter) getStatusInfo(status values.Status) (string, string) {
	switch status {
	case values.StatusValid:
		return "✓", colorGreen
	case values.StatusInvalid:
		return "✗", colorRed
	case values.StatusMissing:
		return "○", colorYellow
	default:
		return "?", colorGray
	}
}
