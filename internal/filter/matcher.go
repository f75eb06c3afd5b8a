package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/tyemirov/treedoc/internal/utils"
)

const (
	errorAbsoluteRootFormat = "resolving project root %s: %w"
	errorReadGitignore      = "reading gitignore patterns under %s: %w"
)

// Matcher binds ignore rules to a project root.
type Matcher struct {
	root           string
	directoryRules []string
	fileRules      []string
	gitignore      gitignore.Matcher
}

// NewMatcher returns a Matcher for projectRoot using the supplied rules.
func NewMatcher(projectRoot string, directoryRules []string, fileRules []string) (*Matcher, error) {
	absoluteRoot, absoluteError := filepath.Abs(projectRoot)
	if absoluteError != nil {
		return nil, fmt.Errorf(errorAbsoluteRootFormat, projectRoot, absoluteError)
	}
	return &Matcher{
		root:           filepath.Clean(absoluteRoot),
		directoryRules: utils.DeduplicatePatterns(directoryRules),
		fileRules:      utils.DeduplicatePatterns(fileRules),
	}, nil
}

// Root returns the absolute project root.
func (matcher *Matcher) Root() string {
	return matcher.root
}

// WithGitignore loads every .gitignore below the root and consults it in addition to the rules.
func (matcher *Matcher) WithGitignore() error {
	patterns, readError := gitignore.ReadPatterns(osfs.New(matcher.root), nil)
	if readError != nil {
		return fmt.Errorf(errorReadGitignore, matcher.root, readError)
	}
	matcher.gitignore = gitignore.NewMatcher(patterns)
	return nil
}

// IsDirectoryIgnored reports whether the directory at path is excluded.
func (matcher *Matcher) IsDirectoryIgnored(path string) bool {
	if IsDirectoryIgnored(path, matcher.directoryRules, matcher.root) {
		return true
	}
	return matcher.ignoredByGitignore(path, true)
}

// IsFileIgnored reports whether the file at path is excluded.
func (matcher *Matcher) IsFileIgnored(path string) bool {
	if IsFileIgnored(path, matcher.fileRules, matcher.root) {
		return true
	}
	return matcher.ignoredByGitignore(path, false)
}

func (matcher *Matcher) ignoredByGitignore(path string, isDirectory bool) bool {
	if matcher.gitignore == nil {
		return false
	}
	relativePath := utils.RelativePathOrSelf(path, matcher.root)
	if relativePath == "." || filepath.IsAbs(relativePath) {
		return false
	}
	return matcher.gitignore.Match(strings.Split(relativePath, utils.PathSegmentSeparator), isDirectory)
}

// IsEntryIgnored reports whether a tree entry is excluded. Directory rules apply
// to every entry regardless of kind, gitignore patterns honor isDirectory.
func (matcher *Matcher) IsEntryIgnored(path string, isDirectory bool) bool {
	if IsDirectoryIgnored(path, matcher.directoryRules, matcher.root) {
		return true
	}
	return matcher.ignoredByGitignore(path, isDirectory)
}
