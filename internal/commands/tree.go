// Package commands contains the traversal, rendering and export logic behind the treedoc command.
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tyemirov/treedoc/internal/types"
)

const (
	// warningSkipSubdirFormat is used when a subdirectory cannot be listed.
	warningSkipSubdirFormat = "Warning: Skipping subdirectory %s due to error: %v"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"

	indentUnit       = "│   "
	teeGlyph         = "├── "
	cornerGlyph      = "└── "
	continuationLine = "│\n"
	directoryMarker  = "/"
	lineTerminator   = "\n"
)

// BuildEntries lists rootDirectoryPath recursively and returns one entry per
// rendered line in pre-order. A failure to list the root is returned; failures
// in subdirectories are reported through Warn and leave the directory empty.
func (treeBuilder *TreeBuilder) BuildEntries(rootDirectoryPath string) ([]types.TreeEntry, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	entries, buildError := treeBuilder.appendEntries(filepath.Clean(absoluteRootDirPath), 0, nil)
	if buildError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, rootDirectoryPath, buildError)
	}
	return entries, nil
}

func (treeBuilder *TreeBuilder) appendEntries(currentDirectoryPath string, depth int, entries []types.TreeEntry) ([]types.TreeEntry, error) {
	listed, rawCount, listError := listDirectory(currentDirectoryPath)
	if listError != nil {
		return entries, listError
	}

	lastRawIndex := rawCount - 1
	lastVisiblePosition := -1
	for _, child := range listed {
		if treeBuilder.Matcher != nil && treeBuilder.Matcher.IsEntryIgnored(child.path, child.isDirectory) {
			continue
		}

		entries = append(entries, types.TreeEntry{
			Depth:       depth,
			Name:        child.name,
			IsDirectory: child.isDirectory,
			IsTerminal:  treeBuilder.cornerPolicy() == types.CornerPolicyRaw && child.rawIndex == lastRawIndex,
		})
		lastVisiblePosition = len(entries) - 1

		if child.isDirectory && !child.isSymlink {
			var childError error
			entries, childError = treeBuilder.appendEntries(child.path, depth+1, entries)
			if childError != nil {
				treeBuilder.warn(fmt.Sprintf(warningSkipSubdirFormat, child.path, childError))
			}
		}
	}

	if treeBuilder.cornerPolicy() == types.CornerPolicyFiltered && lastVisiblePosition >= 0 {
		entries[lastVisiblePosition].IsTerminal = true
	}
	return entries, nil
}

// RenderTree formats entries as a box-drawing diagram. Each directory's child
// block is preceded by a bare continuation line.
func RenderTree(entries []types.TreeEntry) string {
	var builder strings.Builder
	previousDepth := 0
	for _, entry := range entries {
		if entry.Depth > previousDepth {
			builder.WriteString(continuationLine)
		}
		previousDepth = entry.Depth

		builder.WriteString(strings.Repeat(indentUnit, entry.Depth))
		if entry.IsTerminal {
			builder.WriteString(cornerGlyph)
		} else {
			builder.WriteString(teeGlyph)
		}
		builder.WriteString(entry.Name)
		if entry.IsDirectory {
			builder.WriteString(directoryMarker)
		}
		builder.WriteString(lineTerminator)
	}
	return builder.String()
}
