// Package filter decides whether directories and files are excluded from
// traversal and output.
//
// Rules are paths relative to the project root. A rule ending in "*" is a
// prefix-wildcard: it covers the named directory and everything beneath it,
// matching only at path segment boundaries, so "foo/*" covers "foo/a.txt" but
// not "foobar.txt". A rule starting with "**/" matches an entry at any depth by
// base name. Any other directory rule matches one absolute path exactly; any
// other file rule matches one relative path exactly, or, when it contains glob
// metacharacters, every relative path accepted by path.Match.
package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/tyemirov/treedoc/internal/utils"
)

const (
	wildcardSuffix   = "*"
	anyDepthPrefix   = "**/"
	globMetaSymbols  = "*?["
	currentDirectory = "."
)

// IsDirectoryIgnored reports whether the directory at candidatePath is excluded by any rule.
// Exact rules are resolved to absolute paths under projectRoot and compared with the
// candidate's absolute path.
func IsDirectoryIgnored(candidatePath string, directoryRules []string, projectRoot string) bool {
	absoluteCandidate, absoluteRoot, ok := absolutePair(candidatePath, projectRoot)
	if !ok {
		return false
	}
	relativePath := utils.RelativePathOrSelf(absoluteCandidate, absoluteRoot)
	for _, rule := range directoryRules {
		trimmedRule := strings.TrimSpace(rule)
		if trimmedRule == "" {
			continue
		}
		switch {
		case isAnyDepthRule(trimmedRule):
			if matchesAnyDepth(relativePath, trimmedRule) {
				return true
			}
		case isWildcardRule(trimmedRule):
			if matchesPrefix(relativePath, trimmedRule) {
				return true
			}
		default:
			if resolveRule(trimmedRule, absoluteRoot) == absoluteCandidate {
				return true
			}
		}
	}
	return false
}

// IsFileIgnored reports whether the file at candidatePath is excluded by any rule.
// Matching operates on the path relative to projectRoot.
func IsFileIgnored(candidatePath string, fileRules []string, projectRoot string) bool {
	absoluteCandidate, absoluteRoot, ok := absolutePair(candidatePath, projectRoot)
	if !ok {
		return false
	}
	relativePath := utils.RelativePathOrSelf(absoluteCandidate, absoluteRoot)
	for _, rule := range fileRules {
		trimmedRule := strings.TrimSpace(rule)
		if trimmedRule == "" {
			continue
		}
		switch {
		case isAnyDepthRule(trimmedRule):
			if matchesAnyDepth(relativePath, trimmedRule) {
				return true
			}
		case isWildcardRule(trimmedRule):
			if matchesPrefix(relativePath, trimmedRule) {
				return true
			}
		case strings.ContainsAny(trimmedRule, globMetaSymbols):
			isMatched, matchError := path.Match(utils.NormalizeRelativePath(trimmedRule), relativePath)
			if matchError == nil && isMatched {
				return true
			}
		default:
			if utils.NormalizeRelativePath(trimmedRule) == relativePath {
				return true
			}
		}
	}
	return false
}

func absolutePair(candidatePath, projectRoot string) (string, string, bool) {
	absoluteCandidate, candidateError := filepath.Abs(candidatePath)
	if candidateError != nil {
		return "", "", false
	}
	absoluteRoot, rootError := filepath.Abs(projectRoot)
	if rootError != nil {
		return "", "", false
	}
	return filepath.Clean(absoluteCandidate), filepath.Clean(absoluteRoot), true
}

func resolveRule(rule, absoluteRoot string) string {
	localRule := filepath.FromSlash(strings.ReplaceAll(rule, "\\", utils.PathSegmentSeparator))
	if filepath.IsAbs(localRule) {
		return filepath.Clean(localRule)
	}
	return filepath.Clean(filepath.Join(absoluteRoot, localRule))
}

func isWildcardRule(rule string) bool {
	return strings.HasSuffix(rule, wildcardSuffix)
}

func isAnyDepthRule(rule string) bool {
	return strings.HasPrefix(strings.ReplaceAll(rule, "\\", utils.PathSegmentSeparator), anyDepthPrefix)
}

// wildcardPrefix strips the trailing wildcard and any separators preceding it.
func wildcardPrefix(rule string) string {
	normalizedRule := strings.ReplaceAll(rule, "\\", utils.PathSegmentSeparator)
	prefix := strings.TrimRight(strings.TrimSuffix(normalizedRule, wildcardSuffix), utils.PathSegmentSeparator)
	if prefix == "" {
		return ""
	}
	prefix = utils.NormalizeRelativePath(prefix)
	if prefix == currentDirectory {
		return ""
	}
	return prefix
}

// matchesPrefix reports whether relativePath is the rule's prefix or lies beneath it.
// The remainder after the prefix must begin a new path segment.
func matchesPrefix(relativePath, rule string) bool {
	if relativePath == currentDirectory {
		return false
	}
	prefix := wildcardPrefix(rule)
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(relativePath, prefix) {
		return false
	}
	remainder := relativePath[len(prefix):]
	return remainder == "" || strings.HasPrefix(remainder, utils.PathSegmentSeparator)
}

func matchesAnyDepth(relativePath, rule string) bool {
	if relativePath == currentDirectory {
		return false
	}
	namePattern := strings.TrimPrefix(strings.ReplaceAll(rule, "\\", utils.PathSegmentSeparator), anyDepthPrefix)
	isMatched, matchError := path.Match(namePattern, path.Base(relativePath))
	return matchError == nil && isMatched
}
