// Package types defines every cross‑package data structure used by the treedoc CLI.
package types

import "path/filepath"

const (
	FormatPDF      = "pdf"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// CornerPolicy selects which sibling receives the terminal branch glyph.
type CornerPolicy string

const (
	// CornerPolicyRaw marks only the entry at the last index of the unfiltered
	// directory listing. When that entry is ignored no sibling is terminal.
	CornerPolicyRaw CornerPolicy = "raw"
	// CornerPolicyFiltered marks the last entry that is actually rendered.
	CornerPolicyFiltered CornerPolicy = "filtered"
)

// TreeEntry is one rendered line of the directory tree.
type TreeEntry struct {
	Depth       int
	Name        string
	IsDirectory bool
	IsTerminal  bool
}

// CollectedFile is a file that passed every filter and whose extension is allowed.
type CollectedFile struct {
	Directory    string
	Name         string
	RelativePath string
}

// Path returns the on-disk location of the file.
func (file CollectedFile) Path() string {
	return filepath.Join(file.Directory, file.Name)
}

// Section is a titled block of text destined for the output document.
type Section struct {
	Title     string
	Body      string
	SizeBytes int64
	Tokens    int
	ReadError error
}

// OutputSummary captures aggregate information about exported files.
type OutputSummary struct {
	TotalFiles  int
	TotalSize   string
	TotalTokens int
	Model       string
}
