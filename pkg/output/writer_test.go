package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListResult() *ListResult {
	return &ListResult{
		Source: "stats.json",
		Summary: ListSummary{
			TotalModules: 3,
			ShownModules: 2,
			TotalSize:    300,
			ShownSize:    250,
		},
		Sort:    SortEntry{Field: "cumulativeSize", FieldType: "numeric", Direction: "descending"},
		Filters: []FilterEntry{{Group: "cumulativeSize", Summary: "100 < ∞ bytes"}},
		Modules: []ModuleEntry{
			{Name: "./src/index.js", CumulativeSize: 900, Size: 200, RequiredByCount: 0, RequirementsCount: 4},
			{Name: "./src/a,b.js", CumulativeSize: 120, Size: 50, RequiredByCount: 1, RequirementsCount: 0},
		},
	}
}

// TestWriteListResult_JSON tests the behavior of WriteListResult with JSON format.
//
// It verifies:
//   - Output parses back into the same result
//   - Keys use snake_case
func TestWriteListResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListResult(&buf, FormatJSON, sampleListResult()))

	assert.Contains(t, buf.String(), `"shown_modules": 2`)
	assert.Contains(t, buf.String(), `"100 < ∞ bytes"`)

	var parsed ListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	want := sampleListResult()
	assert.Equal(t, want.Summary, parsed.Summary)
	assert.Equal(t, want.Modules, parsed.Modules)
	assert.Equal(t, want.Sort, parsed.Sort)
}

// TestWriteListResult_XML tests the behavior of WriteListResult with XML format.
func TestWriteListResult_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListResult(&buf, FormatXML, sampleListResult()))

	out := buf.String()
	assert.Contains(t, out, "<listResult>")
	assert.Contains(t, out, `<filter group="cumulativeSize">`)
	assert.Contains(t, out, "<cumulativeSize>900</cumulativeSize>")

	var parsed ListResult
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.Len(t, parsed.Modules, 2)
}

// TestWriteListResult_CSV tests the behavior of WriteListResult with CSV format.
func TestWriteListResult_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListResult(&buf, FormatCSV, sampleListResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "NAME,CUMULATIVE_SIZE,SIZE,REQUIRED_BY_COUNT,REQUIREMENTS_COUNT", lines[0])
	assert.Equal(t, "./src/index.js,900,200,0,4", lines[1])
	assert.Equal(t, `"./src/a,b.js",120,50,1,0`, lines[2])
}

// TestWriteListResult_UnsupportedFormat tests that the table format is rejected.
func TestWriteListResult_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteListResult(&buf, FormatTable, sampleListResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// TestWriteStateJSON tests the behavior of WriteStateJSON.
//
// It verifies:
//   - Keys keep column order rather than alphabetical order
//   - Patterns are not HTML-escaped
func TestWriteStateJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStateJSON(&buf,
		SortEntry{Field: "name", FieldType: "alpha", Direction: "ascending"},
		[]StateEntry{
			{Key: "moduleName", Active: true, Values: []KeyValue{{Key: "moduleName", Value: "a<b"}}},
			{Key: "cumulativeSize", Values: []KeyValue{{Key: "cumulativeSizeMin", Value: ""}, {Key: "cumulativeSizeMax", Value: ""}}},
		})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"a<b"`)
	assert.Less(t, strings.Index(out, `"sort"`), strings.Index(out, `"filters"`))
	assert.Less(t, strings.Index(out, `"moduleName"`), strings.Index(out, `"cumulativeSizeMin"`))
	assert.Less(t, strings.Index(out, `"cumulativeSizeMin"`), strings.Index(out, `"cumulativeSizeMax"`))
	assert.Less(t, strings.Index(out, `"field"`), strings.Index(out, `"direction"`))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	active := parsed["activeFilters"].(map[string]any)
	assert.Equal(t, true, active["moduleName"])
	assert.Equal(t, false, active["cumulativeSize"])
}
