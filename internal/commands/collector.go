package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tyemirov/treedoc/internal/types"
	"github.com/tyemirov/treedoc/internal/utils"
)

// FileCollector gathers files whose extension is allowed and that survive ignore rules.
type FileCollector struct {
	Matcher           PathMatcher
	AllowedExtensions []string
	Warn              func(message string)
}

// CollectFiles walks rootDirectoryPath top-down. Within each directory its
// files are listed before descending into its subdirectories, both in
// filesystem order. Ignored subdirectories are pruned before descent.
func (collector *FileCollector) CollectFiles(rootDirectoryPath string) ([]types.CollectedFile, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootDirPath)

	collected, walkError := collector.collectDirectory(cleanedRootPath, cleanedRootPath, nil)
	if walkError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, rootDirectoryPath, walkError)
	}
	return collected, nil
}

func (collector *FileCollector) collectDirectory(currentDirectoryPath string, rootDirectoryPath string, collected []types.CollectedFile) ([]types.CollectedFile, error) {
	listed, _, listError := listDirectory(currentDirectoryPath)
	if listError != nil {
		return collected, listError
	}

	var subdirectories []listedEntry
	for _, child := range listed {
		if child.isDirectory {
			if collector.Matcher != nil && collector.Matcher.IsDirectoryIgnored(child.path) {
				continue
			}
			subdirectories = append(subdirectories, child)
			continue
		}
		if collector.Matcher != nil && collector.Matcher.IsFileIgnored(child.path) {
			continue
		}
		if !collector.hasAllowedExtension(child.name) {
			continue
		}
		collected = append(collected, types.CollectedFile{
			Directory:    currentDirectoryPath,
			Name:         child.name,
			RelativePath: utils.RelativePathOrSelf(child.path, rootDirectoryPath),
		})
	}

	for _, subdirectory := range subdirectories {
		if subdirectory.isSymlink {
			continue
		}
		var childError error
		collected, childError = collector.collectDirectory(subdirectory.path, rootDirectoryPath, collected)
		if childError != nil && collector.Warn != nil {
			collector.Warn(fmt.Sprintf(warningSkipSubdirFormat, subdirectory.path, childError))
		}
	}
	return collected, nil
}

// hasAllowedExtension performs a case-sensitive suffix match against the allow-list.
func (collector *FileCollector) hasAllowedExtension(fileName string) bool {
	for _, extension := range collector.AllowedExtensions {
		if extension != "" && strings.HasSuffix(fileName, extension) {
			return true
		}
	}
	return false
}
