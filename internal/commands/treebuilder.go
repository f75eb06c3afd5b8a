package commands

import (
	"github.com/tyemirov/treedoc/internal/types"
)

// PathMatcher decides which entries are excluded from traversal.
type PathMatcher interface {
	IsEntryIgnored(path string, isDirectory bool) bool
	IsDirectoryIgnored(path string) bool
	IsFileIgnored(path string) bool
}

// TreeBuilder builds directory tree entries using configured options.
type TreeBuilder struct {
	Matcher      PathMatcher
	CornerPolicy types.CornerPolicy
	Warn         func(message string)
}

func (treeBuilder *TreeBuilder) warn(message string) {
	if treeBuilder.Warn != nil {
		treeBuilder.Warn(message)
	}
}

func (treeBuilder *TreeBuilder) cornerPolicy() types.CornerPolicy {
	if treeBuilder.CornerPolicy == "" {
		return types.CornerPolicyRaw
	}
	return treeBuilder.CornerPolicy
}
