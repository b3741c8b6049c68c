// Package output provides formatters for exporting module listings in various formats.
// It supports CSV, JSON, and XML output formats as alternatives to the default table display.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/bundlestat/pkg/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// ValidFormats lists the accepted --output values.
var ValidFormats = []string{string(FormatTable), string(FormatJSON), string(FormatCSV), string(FormatXML)}

// ParseFormatStrict parses a format string and rejects unknown values.
//
// The parsing is case-insensitive and an empty string selects FormatTable.
//
// Returns:
//   - Format: The parsed format
//   - error: A flag validation error for unknown formats
func ParseFormatStrict(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.NewFlagValidationError("--output", fmt.Sprintf("unknown output format %q", s), ValidFormats)
	}
}

// IsStructuredFormat returns true if the format requires structured output (not table).
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML; false for table format
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format (CSV, JSON, XML, or Table)
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes data as CSV to the output writer.
//
// It performs the following operations:
//   - Step 1: Creates a CSV writer
//   - Step 2: Writes the header row
//   - Step 3: Writes all data rows
//   - Step 4: Flushes the buffer and returns any errors
//
// Note: csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each row should have the same number of columns as headers
//
// Returns:
//   - error: When write or flush fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as indented JSON to the output writer.
//
// HTML escaping is disabled so patterns such as "a<b" and "&" stay readable.
//
// Parameters:
//   - data: Data structure to encode as JSON (must be marshallable)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteJSON(data any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteXML writes data as XML to the output writer.
//
// It performs the following operations:
//   - Step 1: Writes the XML header (<?xml version="1.0"?>)
//   - Step 2: Encodes the data with 2-space indentation
//   - Step 3: Adds a trailing newline
//
// Parameters:
//   - data: Data structure to encode as XML (must be marshallable and have xml tags)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteXML(data any) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
