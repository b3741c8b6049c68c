package modules

import (
	"fmt"
	"os"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// DefaultMaxStatsFileSize caps how much of a stats file is read (256MB).
const DefaultMaxStatsFileSize = 256 * 1024 * 1024

// Load reads and validates a stats file.
//
// The format is chosen from the file extension (see FormatForPath).
//
// Parameters:
//   - path: Path to the stats file
//
// Returns:
//   - []Module: Records in file order
//   - error: When the file cannot be read, decoded, or holds invalid records
func Load(path string) ([]Module, error) {
	return LoadWithLimit(path, DefaultMaxStatsFileSize)
}

// LoadWithLimit reads a stats file, refusing files larger than maxSize bytes.
//
// Parameters:
//   - path: Path to the stats file
//   - maxSize: Maximum file size in bytes
//
// Returns:
//   - []Module: Records in file order
//   - error: When the file is too large, unreadable, malformed, or invalid
func LoadWithLimit(path string, maxSize int64) ([]Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}
	if info.Size() > maxSize {
		return nil, errors.NewStatsValidationError(path,
			fmt.Sprintf("stats file too large: %d bytes (max %d bytes)", info.Size(), maxSize),
			"Split the bundle stats or raise stats.max_file_size in .bundlestat.yml")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	format := FormatForPath(path)
	verbose.Infof("Loading %s stats from: %s (%d bytes)", format, path, len(content))

	mods, err := Decode(content, format)
	if err != nil {
		return nil, errors.NewStatsValidationError(path, err.Error(), "")
	}

	verbose.Infof("Loaded %d modules from %s", len(mods), path)
	return mods, nil
}

// Decode parses and validates stats content in the given format.
//
// Parameters:
//   - content: Raw file bytes
//   - format: "json" or "yaml"
//
// Returns:
//   - []Module: Records in input order
//   - error: When the format is unknown, the content malformed, or a record invalid
func Decode(content []byte, format string) ([]Module, error) {
	parser, err := GetStatsParser(format)
	if err != nil {
		return nil, err
	}

	mods, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}

	for _, m := range mods {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return mods, nil
}
