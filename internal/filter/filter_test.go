package filter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tyemirov/treedoc/internal/filter"
)

const (
	backendDirectoryName = "backend"
	nestedDirectoryName  = "nested"
	cacheDirectoryName   = "__pycache__"
)

// TestIsDirectoryIgnored verifies exact, wildcard and any-depth directory rules.
func TestIsDirectoryIgnored(testingHandle *testing.T) {
	projectRoot := testingHandle.TempDir()
	testCases := []struct {
		testName  string
		candidate string
		rules     []string
		expected  bool
	}{
		{testName: "exact match at root", candidate: backendDirectoryName, rules: []string{backendDirectoryName}, expected: true},
		{testName: "exact rule with trailing slash", candidate: backendDirectoryName, rules: []string{backendDirectoryName + "/"}, expected: true},
		{testName: "exact nested path", candidate: "ssimg/whoosh_index", rules: []string{"ssimg/whoosh_index"}, expected: true},
		{testName: "exact rule does not match nested namesake", candidate: nestedDirectoryName + "/" + backendDirectoryName, rules: []string{backendDirectoryName}, expected: false},
		{testName: "exact rule does not match parent", candidate: "ssimg", rules: []string{"ssimg/whoosh_index"}, expected: false},
		{testName: "wildcard matches directory itself", candidate: backendDirectoryName, rules: []string{backendDirectoryName + "/*"}, expected: true},
		{testName: "wildcard matches descendant", candidate: backendDirectoryName + "/db", rules: []string{backendDirectoryName + "/*"}, expected: true},
		{testName: "wildcard respects segment boundary", candidate: "backendtools", rules: []string{backendDirectoryName + "/*"}, expected: false},
		{testName: "any depth rule at root", candidate: cacheDirectoryName, rules: []string{"**/" + cacheDirectoryName}, expected: true},
		{testName: "any depth rule nested", candidate: nestedDirectoryName + "/" + cacheDirectoryName, rules: []string{"**/" + cacheDirectoryName}, expected: true},
		{testName: "unmatched rule is inert", candidate: nestedDirectoryName, rules: []string{"missing"}, expected: false},
		{testName: "empty rules", candidate: nestedDirectoryName, rules: nil, expected: false},
	}
	for _, testCase := range testCases {
		candidatePath := filepath.Join(projectRoot, filepath.FromSlash(testCase.candidate))
		actual := filter.IsDirectoryIgnored(candidatePath, testCase.rules, projectRoot)
		if actual != testCase.expected {
			testingHandle.Errorf("%s: expected %v, got %v", testCase.testName, testCase.expected, actual)
		}
	}
}

// TestIsFileIgnored verifies wildcard, glob and exact file rules.
func TestIsFileIgnored(testingHandle *testing.T) {
	projectRoot := testingHandle.TempDir()
	testCases := []struct {
		testName  string
		candidate string
		rules     []string
		expected  bool
	}{
		{testName: "wildcard covers direct child", candidate: "foo/a.txt", rules: []string{"foo/*"}, expected: true},
		{testName: "wildcard covers deep child", candidate: "foo/bar/b.txt", rules: []string{"foo/*"}, expected: true},
		{testName: "wildcard skips sibling sharing prefix", candidate: "foobar.txt", rules: []string{"foo/*"}, expected: false},
		{testName: "wildcard without separator", candidate: "backend/x.db", rules: []string{"backend*"}, expected: true},
		{testName: "bare wildcard covers everything", candidate: "any/file.py", rules: []string{"*"}, expected: true},
		{testName: "exact root file", candidate: "settings.py", rules: []string{"settings.py"}, expected: true},
		{testName: "exact rule ignores nested namesake", candidate: "app/settings.py", rules: []string{"settings.py"}, expected: false},
		{testName: "exact nested file", candidate: "app/settings.py", rules: []string{"app/settings.py"}, expected: true},
		{testName: "exact rule with dot prefix", candidate: "app/settings.py", rules: []string{"./app/settings.py"}, expected: true},
		{testName: "glob rule", candidate: "docs/manual.pdf", rules: []string{"docs/*.pdf"}, expected: true},
		{testName: "glob rule stays in its directory", candidate: "docs/inner/manual.pdf", rules: []string{"docs/*.pdf"}, expected: false},
		{testName: "any depth file name", candidate: "a/b/.env", rules: []string{"**/.env"}, expected: true},
	}
	for _, testCase := range testCases {
		candidatePath := filepath.Join(projectRoot, filepath.FromSlash(testCase.candidate))
		actual := filter.IsFileIgnored(candidatePath, testCase.rules, projectRoot)
		if actual != testCase.expected {
			testingHandle.Errorf("%s: expected %v, got %v", testCase.testName, testCase.expected, actual)
		}
	}
}

// TestMatcherWithGitignore verifies that .gitignore patterns are consulted when enabled.
func TestMatcherWithGitignore(testingHandle *testing.T) {
	projectRoot := testingHandle.TempDir()
	if writeError := os.WriteFile(filepath.Join(projectRoot, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("writing .gitignore: %v", writeError)
	}

	matcher, matcherError := filter.NewMatcher(projectRoot, nil, nil)
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher: %v", matcherError)
	}
	logPath := filepath.Join(projectRoot, "debug.log")
	buildPath := filepath.Join(projectRoot, "build")
	if matcher.IsFileIgnored(logPath) {
		testingHandle.Fatalf("gitignore must not apply before WithGitignore")
	}

	if gitignoreError := matcher.WithGitignore(); gitignoreError != nil {
		testingHandle.Fatalf("WithGitignore: %v", gitignoreError)
	}
	if !matcher.IsFileIgnored(logPath) {
		testingHandle.Errorf("expected %s to be ignored", logPath)
	}
	if !matcher.IsDirectoryIgnored(buildPath) {
		testingHandle.Errorf("expected %s to be ignored", buildPath)
	}
	if matcher.IsFileIgnored(filepath.Join(projectRoot, "main.go")) {
		testingHandle.Errorf("main.go must not be ignored")
	}
}
