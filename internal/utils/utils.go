// Package utils contains general helper functions used across the treedoc tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// PathSegmentSeparator is the separator used for normalized relative paths.
	PathSegmentSeparator = "/"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// NormalizeRelativePath converts backslashes to forward slashes and removes
// redundant separators, leading "./" and trailing slashes.
func NormalizeRelativePath(relativePath string) string {
	normalizedPath := strings.ReplaceAll(relativePath, "\\", PathSegmentSeparator)
	normalizedPath = filepath.ToSlash(filepath.Clean(filepath.FromSlash(normalizedPath)))
	return strings.TrimPrefix(normalizedPath, "./")
}

// IsWithinRoot reports whether candidatePath lies inside rootPath.
func IsWithinRoot(candidatePath, rootPath string) bool {
	relativePath := RelativePathOrSelf(candidatePath, rootPath)
	if relativePath == "." || filepath.IsAbs(relativePath) {
		return false
	}
	return relativePath != ".." && !strings.HasPrefix(relativePath, "../")
}
