// Package output assembles exported sections into a document on disk.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/tyemirov/treedoc/internal/types"
)

const (
	// sectionSeparatorWidth is the dash count closing every file section.
	sectionSeparatorWidth = 50
	separatorLine         = "----------------------------------------"
	tabReplacement        = "    "

	errorUnsupportedFormat = "unsupported document format '%s'"
	errorWriteDocument     = "writing document %s: %w"
)

// Options configures document construction.
type Options struct {
	Title    string
	PageSize string
	FontPath string
}

// New returns a Document for format.
func New(format string, options Options) (Document, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case types.FormatPDF, "":
		return NewPDFDocument(options)
	case types.FormatMarkdown, "md":
		return NewMarkdownDocument(options.Title), nil
	case types.FormatText, "txt", "raw":
		return NewTextDocument(), nil
	default:
		return nil, fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// ExtensionForFormat reports the file extension used by format without building a document.
func ExtensionForFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case types.FormatPDF, "":
		return pdfExtension, nil
	case types.FormatMarkdown, "md":
		return markdownExtension, nil
	case types.FormatText, "txt", "raw":
		return textExtension, nil
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// FileSectionBody frames content the way file sections appear in paginated output.
func FileSectionBody(content string) string {
	return "\n" + content + "\n" + strings.Repeat("-", sectionSeparatorWidth)
}

func expandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", tabReplacement)
}

func writeFile(path string, data []byte) error {
	if writeError := os.WriteFile(path, data, 0o644); writeError != nil {
		return fmt.Errorf(errorWriteDocument, path, writeError)
	}
	return nil
}

// FormatSummaryLine returns a single line describing the exported files.
func FormatSummaryLine(summary types.OutputSummary) string {
	label := "files"
	if summary.TotalFiles == 1 {
		label = "file"
	}
	extra := ""
	if summary.TotalTokens > 0 {
		extra = fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.TotalFiles, label, summary.TotalSize, extra, modelSuffix)
}
