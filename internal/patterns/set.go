package patterns

// Set is an ordered, precompiled list of patterns that matches when any
// member matches.
type Set struct {
	matchers []Matcher
}

// NewSet compiles patterns in order.
func NewSet(patterns []string) Set {
	matchers := make([]Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		matchers = append(matchers, Compile(pattern))
	}
	return Set{matchers: matchers}
}

// Len returns the number of patterns in the set.
func (set Set) Len() int {
	return len(set.matchers)
}

// Patterns returns the source patterns in order.
func (set Set) Patterns() []string {
	result := make([]string, 0, len(set.matchers))
	for _, matcher := range set.matchers {
		result = append(result, matcher.pattern)
	}
	return result
}

// Matches reports whether candidatePath matches any pattern of the set.
func (set Set) Matches(candidatePath string) bool {
	_, matched := set.FirstMatch(candidatePath)
	return matched
}

// FirstMatch returns the first pattern, in set order, that matches candidatePath.
func (set Set) FirstMatch(candidatePath string) (string, bool) {
	for _, matcher := range set.matchers {
		if matcher.Test(candidatePath) {
			return matcher.pattern, true
		}
	}
	return "", false
}
