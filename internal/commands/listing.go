package commands

import (
	"io/fs"
	"os"
	"path/filepath"
)

// listedEntry is a directory child that still exists on disk.
type listedEntry struct {
	rawIndex    int
	name        string
	path        string
	isDirectory bool
	isSymlink   bool
}

// listDirectory returns the children of directoryPath in the order the
// filesystem reports them. os.ReadDir is avoided because it sorts by name.
// Children that cannot be resolved, such as dangling symlinks, are dropped.
// The raw listing length is returned so callers can reason about the
// unfiltered last index.
func listDirectory(directoryPath string) ([]listedEntry, int, error) {
	directoryHandle, openError := os.Open(directoryPath)
	if openError != nil {
		return nil, 0, openError
	}
	defer directoryHandle.Close()

	directoryEntries, readError := directoryHandle.ReadDir(-1)
	if readError != nil {
		return nil, 0, readError
	}

	listed := make([]listedEntry, 0, len(directoryEntries))
	for rawIndex, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		childInfo, statError := os.Stat(childPath)
		if statError != nil {
			continue
		}
		listed = append(listed, listedEntry{
			rawIndex:    rawIndex,
			name:        directoryEntry.Name(),
			path:        childPath,
			isDirectory: childInfo.IsDir(),
			isSymlink:   directoryEntry.Type()&fs.ModeSymlink != 0,
		})
	}
	return listed, len(directoryEntries), nil
}
