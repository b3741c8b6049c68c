package filtering

import (
	"regexp"
)

// Matcher defines the interface for module name matching strategies.
//
// Example:
//
//	matcher := filtering.NewNameMatcher("^lodash")
//	if matcher.Match("lodash/fp.js") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given module name matches.
	//
	// Parameters:
	//   - value: Module name to test
	//
	// Returns:
	//   - bool: true if value matches the pattern
	Match(value string) bool

	// String returns a string representation of the matcher.
	String() string
}

// RegexMatcher matches names that contain a match of the expression.
//
// The expression is not anchored: "lodash" matches "./node_modules/lodash/fp.js".
// Use ^ and $ to anchor.
//
// Fields:
//   - Regexp: The compiled expression
type RegexMatcher struct {
	Regexp *regexp.Regexp
}

// Match tests if value contains a match of the expression.
func (m *RegexMatcher) Match(value string) bool {
	return m.Regexp.MatchString(value)
}

// String returns the expression source.
func (m *RegexMatcher) String() string {
	return m.Regexp.String()
}

// AnyMatcher matches every name. It stands in for an inactive pattern.
type AnyMatcher struct{}

// Match always returns true.
func (AnyMatcher) Match(string) bool { return true }

// String returns ".*".
func (AnyMatcher) String() string { return ".*" }

// NoneMatcher matches no name. It stands in for a pattern that does not compile.
//
// Fields:
//   - Pattern: The rejected pattern text
//   - Err: Why the pattern was rejected
type NoneMatcher struct {
	Pattern string
	Err     error
}

// Match always returns false.
func (m *NoneMatcher) Match(string) bool { return false }

// String returns the rejected pattern.
func (m *NoneMatcher) String() string { return m.Pattern }

// NewNameMatcher builds the matcher for a name pattern.
//
// It performs the following operations:
//   - Step 1: Returns AnyMatcher for an empty pattern
//   - Step 2: Compiles the pattern through the shared regex cache
//   - Step 3: Returns NoneMatcher when compilation fails, so a half-typed
//     pattern such as "[" yields an empty table instead of an error
//
// Parameters:
//   - pattern: Raw pattern text as typed by the user
//
// Returns:
//   - Matcher: Never nil
func NewNameMatcher(pattern string) Matcher {
	p := NamePattern{Pattern: pattern}
	if !p.IsActive() {
		return AnyMatcher{}
	}
	re, err := p.Compile()
	if err != nil {
		return &NoneMatcher{Pattern: pattern, Err: err}
	}
	return &RegexMatcher{Regexp: re}
}

var (
	_ Matcher = (*RegexMatcher)(nil)
	_ Matcher = AnyMatcher{}
	_ Matcher = (*NoneMatcher)(nil)
)
