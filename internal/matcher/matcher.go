// Package matcher matches paper ids against glob or regular expression patterns.
package matcher

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agentstation/termipaper/pkg/errors"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto detects the pattern type from the pattern itself.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether inputs match a compiled pattern.
type Matcher interface {
	// Match checks if the input matches the pattern.
	Match(input string) bool
	// MatchAll returns the inputs that match, in order.
	MatchAll(inputs ...string) []string
	// Pattern returns the original pattern string.
	Pattern() string
	// Type returns the pattern type being used.
	Type() PatternType
}

// Options configures the matcher behavior.
type Options struct {
	// CaseInsensitive makes matching case-insensitive
	CaseInsensitive bool
}

type matcher struct {
	pattern         string
	patternType     PatternType
	compiled        *regexp.Regexp
	globPattern     string
	caseInsensitive bool
}

// New compiles pattern. Invalid patterns yield a validation error.
func New(patternType PatternType, pattern string, opts ...Options) (Matcher, error) {
	var options Options
	if len(opts) > 0 {
		options = opts[0]
	}

	m := &matcher{
		pattern:         pattern,
		patternType:     patternType,
		caseInsensitive: options.CaseInsensitive,
	}
	if patternType == Auto {
		m.patternType = detectPatternType(pattern)
	}

	switch m.patternType {
	case Glob:
		m.globPattern = pattern
		if m.caseInsensitive {
			m.globPattern = strings.ToLower(pattern)
		}
		if _, err := filepath.Match(m.globPattern, ""); err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid glob: "+err.Error())
		}
	case Regex:
		expr := pattern
		if m.caseInsensitive && !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid regex: "+err.Error())
		}
		m.compiled = compiled
	default:
		return nil, errors.NewValidationError("pattern", pattern, "unsupported pattern type "+m.patternType.String())
	}
	return m, nil
}

// Match checks if the input matches the pattern.
func (m *matcher) Match(input string) bool {
	switch m.patternType {
	case Glob:
		if m.caseInsensitive {
			input = strings.ToLower(input)
		}
		matched, _ := filepath.Match(m.globPattern, input)
		return matched
	case Regex:
		return m.compiled.MatchString(input)
	default:
		return false
	}
}

// MatchAll returns the inputs that match, in order.
func (m *matcher) MatchAll(inputs ...string) []string {
	results := make([]string, 0)
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType treats a pattern as a regex when it uses syntax a glob never does.
func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", "{", "}", "+", "|", "(", ")", ".*",
	}
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}
