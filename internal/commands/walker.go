package commands

import (
	"github.com/temirov/project-print/internal/patterns"
	"go.uber.org/zap"
)

// Walker selects files below a root directory and collects them into a tree
// and a content buffer.
type Walker struct {
	Policy patterns.Policy
	Logger *zap.Logger
	// SkipPaths lists absolute paths that are never selected, whatever the policy decides.
	SkipPaths []string
}

// NewWalker returns a Walker applying the given ignore and include patterns.
func NewWalker(ignorePatterns []string, includePatterns []string, logger *zap.Logger) *Walker {
	return &Walker{
		Policy: patterns.NewPolicy(ignorePatterns, includePatterns),
		Logger: logger,
	}
}
