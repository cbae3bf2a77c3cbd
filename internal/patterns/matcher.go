// Package patterns decides which paths of a project tree are selected.
//
// A pattern is a case-insensitive wildcard expression in which "*" stands for
// any run of characters and every other character is literal. Matching is
// unanchored: a pattern matches when it occurs anywhere in the candidate.
// Patterns that contain a path separator are tested against the full relative
// path; bare patterns are tested against the base name and, as a literal
// substring, against the full path.
package patterns

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

const (
	pathSeparator    = "/"
	windowsSeparator = "\\"
	wildcard         = "*"
	doubleWildcard   = wildcard + wildcard
)

// Matcher is a compiled pattern.
type Matcher struct {
	pattern      string
	lowerPattern string
	fullPathOnly bool
	expression   glob.Glob
}

// Compile converts pattern into a Matcher. The empty pattern compiles into a
// Matcher that never matches.
func Compile(pattern string) Matcher {
	normalizedPattern := normalizePath(pattern)
	if normalizedPattern == "" {
		return Matcher{}
	}
	lowerPattern := strings.ToLower(normalizedPattern)
	matcher := Matcher{
		pattern:      pattern,
		lowerPattern: lowerPattern,
		fullPathOnly: strings.Contains(lowerPattern, pathSeparator),
	}

	literalSegments := strings.Split(lowerPattern, wildcard)
	for segmentIndex, literalSegment := range literalSegments {
		literalSegments[segmentIndex] = glob.QuoteMeta(literalSegment)
	}
	// Surrounding wildcards make the expression unanchored; no separators are
	// registered, so "*" spans path separators as well.
	expression := wildcard + strings.Join(literalSegments, wildcard) + wildcard
	for strings.Contains(expression, doubleWildcard) {
		expression = strings.ReplaceAll(expression, doubleWildcard, wildcard)
	}
	compiledExpression, compileError := glob.Compile(expression)
	if compileError == nil {
		matcher.expression = compiledExpression
	}
	return matcher
}

// Pattern returns the pattern the Matcher was compiled from.
func (matcher Matcher) Pattern() string {
	return matcher.pattern
}

// Test reports whether candidatePath matches the compiled pattern.
func (matcher Matcher) Test(candidatePath string) bool {
	if matcher.lowerPattern == "" {
		return false
	}
	normalizedPath := strings.ToLower(normalizePath(candidatePath))
	if matcher.fullPathOnly {
		return matcher.matchExpression(normalizedPath)
	}
	baseName := path.Base(normalizedPath)
	return matcher.matchExpression(baseName) || strings.Contains(normalizedPath, matcher.lowerPattern)
}

func (matcher Matcher) matchExpression(value string) bool {
	if matcher.expression == nil {
		return strings.Contains(value, matcher.lowerPattern)
	}
	return matcher.expression.Match(value)
}

// MatchesAny reports whether candidatePath matches at least one of patterns.
// An empty pattern list never matches.
func MatchesAny(candidatePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if Compile(pattern).Test(candidatePath) {
			return true
		}
	}
	return false
}

func normalizePath(value string) string {
	return strings.ReplaceAll(value, windowsSeparator, pathSeparator)
}
