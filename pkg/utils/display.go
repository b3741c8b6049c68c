package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (CJK, emoji) count as two cells, so module names with such
// characters still line up in the table.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string to a specific display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells (must be > 0 to have effect)
//
// Returns:
//   - string: The padded string, or original if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// ToWidthLeft right-aligns a string within a display width.
//
// Numbers in the module table are right-aligned.
func ToWidthLeft(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return strings.Repeat(" ", width-current) + val
}

// TruncateWidth shortens a string to at most width cells, marking the cut with "…".
//
// Parameters:
//   - val: The string to shorten
//   - width: Maximum display width; values <= 0 disable truncation
//
// Returns:
//   - string: val unchanged if it fits, otherwise a truncated copy
func TruncateWidth(val string, width int) string {
	if width <= 0 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "…")
}

// FormatBytes renders a byte count in IEC units (e.g., "1.5 KiB").
//
// Parameters:
//   - n: Byte count; negative values are rendered as "0 B"
//
// Returns:
//   - string: Human-readable size
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// Max returns the maximum value from a list of integers.
//
// Returns:
//   - int: The maximum value from the input, or 0 if no values provided
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
