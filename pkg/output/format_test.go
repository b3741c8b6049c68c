package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bserrors "github.com/ajxudir/bundlestat/pkg/errors"
)

// TestParseFormatStrict tests the behavior of ParseFormatStrict.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - An empty string selects the table
//   - Unknown formats are rejected with the valid values listed
func TestParseFormatStrict(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"Json", FormatJSON},
		{" XML ", FormatXML},
		{"table", FormatTable},
		{"", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormatStrict(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	_, err := ParseFormatStrict("yaml")
	require.Error(t, err)
	ve, ok := bserrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "--output", ve.Field)
	assert.Equal(t, ValidFormats, ve.ValidKeys)
}

// TestIsStructuredFormat tests the behavior of IsStructuredFormat.
func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestFormatter_WriteCSV tests the behavior of WriteCSV.
//
// It verifies:
//   - Writes CSV headers and rows
//   - Quotes values containing commas
func TestFormatter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)

	err := f.WriteCSV([]string{"NAME", "SIZE"}, [][]string{{"a,b", "1"}, {"c", "2"}})
	require.NoError(t, err)
	assert.Equal(t, "NAME,SIZE\n\"a,b\",1\nc,2\n", buf.String())
	assert.Equal(t, FormatCSV, f.Format())
}

// TestFormatter_WriteJSON tests that JSON output is indented and not HTML-escaped.
func TestFormatter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON, &buf).WriteJSON(map[string]string{"pattern": "a<b&c"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"pattern\": \"a<b&c\"\n}\n", buf.String())
}

// TestFormatter_WriteXML tests the behavior of WriteXML.
func TestFormatter_WriteXML(t *testing.T) {
	type item struct {
		XMLName xml.Name `xml:"item"`
		Name    string   `xml:"name"`
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatXML, &buf).WriteXML(item{Name: "x"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))
	assert.Contains(t, buf.String(), "<name>x</name>")
}

type errorWriter struct{}

func (e *errorWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

// TestFormatter_WriteErrors tests that writer failures are returned.
func TestFormatter_WriteErrors(t *testing.T) {
	f := NewFormatter(FormatCSV, &errorWriter{})
	assert.Error(t, f.WriteCSV([]string{"A"}, nil))
	assert.Error(t, f.WriteJSON(map[string]int{"a": 1}))

	var buf bytes.Buffer
	err := NewFormatter(FormatJSON, &buf).WriteJSON(func() {})
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}
