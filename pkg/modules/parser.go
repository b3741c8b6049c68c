package modules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StatsParser defines the interface for decoding stats file contents.
type StatsParser interface {
	// Parse decodes raw file content into module records.
	//
	// Parameters:
	//   - content: The raw bytes of the stats file
	//
	// Returns:
	//   - []Module: Records in file order
	//   - error: When the content is not valid for this format
	Parse(content []byte) ([]Module, error)
}

// JSONParser decodes JSON stats files.
//
// Both `{"modules": [...]}` and a bare `[...]` are accepted.
type JSONParser struct{}

// Parse decodes JSON content into module records.
//
// Parameters:
//   - content: Raw JSON bytes
//
// Returns:
//   - []Module: Records in file order
//   - error: Returns an error if the JSON is invalid
func (p *JSONParser) Parse(content []byte) ([]Module, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var mods []Module
		if err := json.Unmarshal(trimmed, &mods); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return mods, nil
	}

	var stats StatsFile
	if err := json.Unmarshal(trimmed, &stats); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return stats.Modules, nil
}

// YAMLParser decodes YAML stats files with the same keys as the JSON form.
type YAMLParser struct{}

// Parse decodes YAML content into module records.
//
// Parameters:
//   - content: Raw YAML bytes
//
// Returns:
//   - []Module: Records in file order
//   - error: Returns an error if the YAML is invalid
func (p *YAMLParser) Parse(content []byte) ([]Module, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var mods []Module
		if err := root.Decode(&mods); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return mods, nil
	}

	var stats StatsFile
	if err := root.Decode(&stats); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return stats.Modules, nil
}

// GetStatsParser returns the parser for a format name.
//
// Parameters:
//   - format: "json" or "yaml"
//
// Returns:
//   - StatsParser: The parser implementation
//   - error: Returns an error if format is empty or unsupported
func GetStatsParser(format string) (StatsParser, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, fmt.Errorf("format cannot be empty")
	}

	switch format {
	case "json":
		return &JSONParser{}, nil
	case "yaml", "yml":
		return &YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatForPath derives the stats format from a file extension.
//
// Unknown extensions fall back to "json", which is what bundlers emit.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return "yaml"
	default:
		return "json"
	}
}
