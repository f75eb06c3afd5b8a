package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// DefaultFontFileName is the TrueType font looked up for non-Latin text.
	DefaultFontFileName = "msyh.ttf"
	fontsDirectoryName  = "fonts"

	errorResolveOutputFormat = "resolving output path %s: %w"
)

// ResolveOutputPath returns the absolute path of the exported document.
// Without an explicit path the document is named after the project root and
// placed in OutputDirectoryName under it.
func ResolveOutputPath(projectRoot string, explicitPath string, extension string) (string, error) {
	trimmedPath := strings.TrimSpace(explicitPath)
	if trimmedPath != "" {
		absolutePath, absoluteError := filepath.Abs(trimmedPath)
		if absoluteError != nil {
			return "", fmt.Errorf(errorResolveOutputFormat, trimmedPath, absoluteError)
		}
		return absolutePath, nil
	}
	absoluteRoot, absoluteError := filepath.Abs(projectRoot)
	if absoluteError != nil {
		return "", fmt.Errorf(errorResolveOutputFormat, projectRoot, absoluteError)
	}
	documentName := filepath.Base(absoluteRoot) + "." + extension
	return filepath.Join(absoluteRoot, OutputDirectoryName, documentName), nil
}

// ResolveFontPath returns the first existing font among the explicit path,
// OutputDirectoryName/DefaultFontFileName under the project root, and
// fonts/DefaultFontFileName in the XDG data directories. An empty string means
// no font was found and the document falls back to its built-in font.
func ResolveFontPath(projectRoot string, explicitPath string) string {
	candidates := make([]string, 0, 2)
	if trimmedPath := strings.TrimSpace(explicitPath); trimmedPath != "" {
		candidates = append(candidates, trimmedPath)
	}
	candidates = append(candidates, filepath.Join(projectRoot, OutputDirectoryName, DefaultFontFileName))
	for _, candidate := range candidates {
		if isRegularFile(candidate) {
			return candidate
		}
	}
	dataFontPath, searchError := xdg.SearchDataFile(filepath.Join(fontsDirectoryName, DefaultFontFileName))
	if searchError == nil && isRegularFile(dataFontPath) {
		return dataFontPath
	}
	return ""
}

func isRegularFile(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && fileInformation.Mode().IsRegular()
}
