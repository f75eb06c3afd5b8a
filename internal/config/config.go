// Package config holds the compiled-in traversal rules and resolves run options.
package config

import (
	"github.com/tyemirov/treedoc/internal/utils"
)

// OutputDirectoryName is the project subdirectory receiving the exported
// document. It is ignored by default so the artifact never exports itself.
const OutputDirectoryName = "custom_gpts"

// Configuration carries the traversal rules passed into the tree builder and
// the file collector.
type Configuration struct {
	IgnoreDirRules    []string
	IgnoreFileRules   []string
	AllowedExtensions []string
}

var defaultIgnoreDirRules = []string{
	OutputDirectoryName,
	"**/" + utils.GitDirectoryName,
	"**/myvenv",
	"**/myvenv2",
	"**/venv",
	"**/ipv6test_venv",
	"**/__pycache__",
	"**/staticfiles",
	"**/collectedstatic",
	"**/media",
	"ssimg/whoosh_index",
}

var defaultAllowedExtensions = []string{
	".py",
	".html",
	".js",
	".css",
	".txt",
	".go",
	".c",
	".cpp",
	".java",
	".jsx",
	".ts",
	".tsx",
	".rb",
	".php",
	".asp",
	".aspx",
	".rsx",
	".swift",
	".scss",
	".less",
	".md",
	".rs",
	".kt",
	".scala",
	".rbxm",
	".lua",
	".R",
	".sh",
	".bat",
	".pl",
	".ruby",
	".jl",
	".rnf",
	".elm",
	".hpp",
	".h",
	".pas",
	".adb",
	".dart",
	".ktd",
	".spec",
	".zsh",
	".fish",
	".mdw",
	".ipynb",
	".jlx",
}

// Default returns a fresh copy of the compiled-in rules.
func Default() Configuration {
	return Configuration{
		IgnoreDirRules:    append([]string(nil), defaultIgnoreDirRules...),
		IgnoreFileRules:   nil,
		AllowedExtensions: utils.DeduplicatePatterns(defaultAllowedExtensions),
	}
}

// WithOutputExcluded returns a copy of configuration whose file rules also
// exclude outputPath when it lies inside projectRoot.
func (configuration Configuration) WithOutputExcluded(outputPath string, projectRoot string) Configuration {
	result := configuration
	result.IgnoreFileRules = append([]string(nil), configuration.IgnoreFileRules...)
	if !utils.IsWithinRoot(outputPath, projectRoot) {
		return result
	}
	relativeOutput := utils.RelativePathOrSelf(outputPath, projectRoot)
	if !utils.ContainsString(result.IgnoreFileRules, relativeOutput) {
		result.IgnoreFileRules = append(result.IgnoreFileRules, relativeOutput)
	}
	return result
}
