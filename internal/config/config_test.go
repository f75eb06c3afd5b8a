package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/tyemirov/treedoc/internal/types"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if mkdirError := os.MkdirAll(filepath.Dir(filePath), 0o755); mkdirError != nil {
		testingHandle.Fatalf("failed to create %s: %v", filepath.Dir(filePath), mkdirError)
	}
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("treedoc", pflag.ContinueOnError)
	flags.String(KeyOutput, "", "")
	flags.String(KeyFormat, types.FormatPDF, "")
	flags.String(KeyPageSize, "A3", "")
	flags.String(KeyFont, "", "")
	flags.String(KeyCorner, string(types.CornerPolicyRaw), "")
	flags.Bool(KeyGitignore, false, "")
	flags.Bool(KeyTokens, false, "")
	flags.String(KeyModel, "gpt-4o", "")
	flags.Bool(KeyCopy, false, "")
	flags.Bool(KeyVerbose, false, "")
	return flags
}

// TestDefaultHasUniqueExtensions verifies that the compiled-in allow-list carries no duplicates.
func TestDefaultHasUniqueExtensions(testingHandle *testing.T) {
	configuration := Default()
	seen := map[string]struct{}{}
	for _, extension := range configuration.AllowedExtensions {
		if _, duplicate := seen[extension]; duplicate {
			testingHandle.Fatalf("duplicate extension %s", extension)
		}
		seen[extension] = struct{}{}
	}
	if _, hasPython := seen[".py"]; !hasPython {
		testingHandle.Fatalf("expected .py in default extensions")
	}
	if len(configuration.IgnoreDirRules) == 0 || configuration.IgnoreDirRules[0] != OutputDirectoryName {
		testingHandle.Fatalf("expected %s to lead the ignored directories, got %v", OutputDirectoryName, configuration.IgnoreDirRules)
	}
}

// TestDefaultReturnsCopies verifies that callers cannot mutate the compiled-in rules.
func TestDefaultReturnsCopies(testingHandle *testing.T) {
	first := Default()
	first.IgnoreDirRules[0] = "mutated"
	second := Default()
	if second.IgnoreDirRules[0] != OutputDirectoryName {
		testingHandle.Fatalf("Default returned shared slice")
	}
}

// TestWithOutputExcluded verifies that an output path inside the root becomes a file rule.
func TestWithOutputExcluded(testingHandle *testing.T) {
	projectRoot := testingHandle.TempDir()
	insidePath := filepath.Join(projectRoot, "docs", "snapshot.md")
	outsidePath := filepath.Join(filepath.Dir(projectRoot), "snapshot.md")

	inside := Default().WithOutputExcluded(insidePath, projectRoot)
	if len(inside.IgnoreFileRules) != 1 || inside.IgnoreFileRules[0] != "docs/snapshot.md" {
		testingHandle.Fatalf("unexpected file rules %v", inside.IgnoreFileRules)
	}

	outside := Default().WithOutputExcluded(outsidePath, projectRoot)
	if len(outside.IgnoreFileRules) != 0 {
		testingHandle.Fatalf("expected no file rules, got %v", outside.IgnoreFileRules)
	}
}

// TestResolveOutputPath verifies the default document location and explicit overrides.
func TestResolveOutputPath(testingHandle *testing.T) {
	projectRoot := filepath.Join(testingHandle.TempDir(), "demo")
	defaultPath, resolveError := ResolveOutputPath(projectRoot, "", "pdf")
	if resolveError != nil {
		testingHandle.Fatalf("ResolveOutputPath: %v", resolveError)
	}
	expectedDefault := filepath.Join(projectRoot, OutputDirectoryName, "demo.pdf")
	if defaultPath != expectedDefault {
		testingHandle.Fatalf("expected %s, got %s", expectedDefault, defaultPath)
	}

	explicitPath := filepath.Join(testingHandle.TempDir(), "out.md")
	resolvedExplicit, resolveError := ResolveOutputPath(projectRoot, explicitPath, "md")
	if resolveError != nil {
		testingHandle.Fatalf("ResolveOutputPath: %v", resolveError)
	}
	if resolvedExplicit != explicitPath {
		testingHandle.Fatalf("expected %s, got %s", explicitPath, resolvedExplicit)
	}
}

// TestResolveFontPath verifies explicit and project-local font discovery.
func TestResolveFontPath(testingHandle *testing.T) {
	projectRoot := testingHandle.TempDir()
	missingFont := filepath.Join(projectRoot, "missing.ttf")
	if resolved := ResolveFontPath(projectRoot, missingFont); resolved == missingFont {
		testingHandle.Fatalf("missing explicit font must not resolve")
	}

	projectFont := filepath.Join(projectRoot, OutputDirectoryName, DefaultFontFileName)
	writeTestFile(testingHandle, projectFont, "font")
	if resolved := ResolveFontPath(projectRoot, ""); resolved != projectFont {
		testingHandle.Fatalf("expected %s, got %s", projectFont, resolved)
	}

	explicitFont := filepath.Join(projectRoot, "custom.ttf")
	writeTestFile(testingHandle, explicitFont, "font")
	if resolved := ResolveFontPath(projectRoot, explicitFont); resolved != explicitFont {
		testingHandle.Fatalf("expected %s, got %s", explicitFont, resolved)
	}
}

// TestLoadRunOptionsLayersFlagsOverEnvironment verifies flag and environment precedence.
func TestLoadRunOptionsLayersFlagsOverEnvironment(testingHandle *testing.T) {
	testingHandle.Setenv("TREEDOC_FORMAT", "markdown")
	testingHandle.Setenv("TREEDOC_PAGE_SIZE", "A4")
	testingHandle.Setenv("TREEDOC_CORNER", "filtered")

	flags := newTestFlags()
	if parseError := flags.Parse([]string{"--page-size", "Letter", "--tokens"}); parseError != nil {
		testingHandle.Fatalf("parse flags: %v", parseError)
	}
	reader, readerError := NewReader(flags)
	if readerError != nil {
		testingHandle.Fatalf("NewReader: %v", readerError)
	}
	projectRoot := testingHandle.TempDir()
	options, loadError := LoadRunOptions(reader, projectRoot)
	if loadError != nil {
		testingHandle.Fatalf("LoadRunOptions: %v", loadError)
	}
	if options.Format != types.FormatMarkdown {
		testingHandle.Errorf("expected markdown from environment, got %s", options.Format)
	}
	if options.PageSize != "Letter" {
		testingHandle.Errorf("expected flag to win over environment, got %s", options.PageSize)
	}
	if options.CornerPolicy != types.CornerPolicyFiltered {
		testingHandle.Errorf("expected filtered corner policy, got %s", options.CornerPolicy)
	}
	if !options.CountTokens {
		testingHandle.Errorf("expected token counting enabled")
	}
	if options.Root != filepath.Clean(projectRoot) {
		testingHandle.Errorf("expected root %s, got %s", projectRoot, options.Root)
	}
}

// TestLoadRunOptionsRejectsInvalidValues verifies validation of format and corner values.
func TestLoadRunOptionsRejectsInvalidValues(testingHandle *testing.T) {
	testCases := []struct {
		testName  string
		arguments []string
	}{
		{testName: "format", arguments: []string{"--format", "docx"}},
		{testName: "corner", arguments: []string{"--corner", "diagonal"}},
	}
	for _, testCase := range testCases {
		flags := newTestFlags()
		if parseError := flags.Parse(testCase.arguments); parseError != nil {
			testingHandle.Fatalf("%s: parse flags: %v", testCase.testName, parseError)
		}
		reader, readerError := NewReader(flags)
		if readerError != nil {
			testingHandle.Fatalf("%s: NewReader: %v", testCase.testName, readerError)
		}
		if _, loadError := LoadRunOptions(reader, testingHandle.TempDir()); loadError == nil {
			testingHandle.Errorf("%s: expected validation error", testCase.testName)
		}
	}
}
