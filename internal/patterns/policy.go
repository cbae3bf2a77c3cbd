package patterns

// Policy is the selection rule applied to every file and directory of a walk.
//
// With a non-empty include set a path is selected iff it matches the include
// set, whatever the ignore set says. With an empty include set a path is
// selected iff it does not match the ignore set.
type Policy struct {
	Ignore  Set
	Include Set
}

// Decision explains the outcome of a Policy evaluation.
type Decision struct {
	Included bool
	// Pattern is the pattern that decided the outcome, empty when no pattern matched.
	Pattern string
}

// NewPolicy compiles the ignore and include pattern lists.
func NewPolicy(ignorePatterns []string, includePatterns []string) Policy {
	return Policy{
		Ignore:  NewSet(ignorePatterns),
		Include: NewSet(includePatterns),
	}
}

// HasIncludes reports whether the include set decides selection.
func (policy Policy) HasIncludes() bool {
	return policy.Include.Len() > 0
}

// ShouldInclude reports whether candidatePath is selected.
func (policy Policy) ShouldInclude(candidatePath string) bool {
	return policy.Decide(candidatePath).Included
}

// Decide evaluates candidatePath and reports the deciding pattern.
func (policy Policy) Decide(candidatePath string) Decision {
	if policy.HasIncludes() {
		pattern, matched := policy.Include.FirstMatch(candidatePath)
		return Decision{Included: matched, Pattern: pattern}
	}
	pattern, ignored := policy.Ignore.FirstMatch(candidatePath)
	return Decision{Included: !ignored, Pattern: pattern}
}

// ShouldInclude applies the selection rule to candidatePath using uncompiled pattern lists.
func ShouldInclude(candidatePath string, ignorePatterns []string, includePatterns []string) bool {
	if len(includePatterns) > 0 {
		return MatchesAny(candidatePath, includePatterns)
	}
	return !MatchesAny(candidatePath, ignorePatterns)
}
