package utils

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxRegexPatternLength is the longest pattern CompileRegex accepts.
const DefaultMaxRegexPatternLength = 1000

// regexCacheSize bounds the number of compiled patterns kept in memory.
// The interactive table compiles a new pattern on every keystroke.
const regexCacheSize = 256

type compiled struct {
	re  *regexp.Regexp
	err error
}

// regexCache stores compile results, including failures, keyed by pattern.
var regexCache = mustNewRegexCache(regexCacheSize)

func mustNewRegexCache(size int) *lru.Cache[string, compiled] {
	cache, err := lru.New[string, compiled](size)
	if err != nil {
		panic("regex cache: " + err.Error())
	}
	return cache
}

// CompileRegex compiles a pattern, reusing earlier results for the same text.
//
// It performs the following operations:
//   - Step 1: Returns the cached result (regexp or error) if the pattern was seen
//   - Step 2: Rejects patterns longer than DefaultMaxRegexPatternLength
//   - Step 3: Compiles with RE2 syntax and caches the outcome
//
// Parameters:
//   - pattern: The regular expression text
//
// Returns:
//   - *regexp.Regexp: The compiled expression, nil on error
//   - error: Compile error or length violation
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	if c, ok := regexCache.Get(pattern); ok {
		return c.re, c.err
	}

	var c compiled
	if len(pattern) > DefaultMaxRegexPatternLength {
		c.err = fmt.Errorf("pattern length %d exceeds maximum %d", len(pattern), DefaultMaxRegexPatternLength)
	} else {
		c.re, c.err = regexp.Compile(pattern)
	}

	regexCache.Add(pattern, c)
	return c.re, c.err
}

// PurgeRegexCache drops every cached pattern.
func PurgeRegexCache() {
	regexCache.Purge()
}
