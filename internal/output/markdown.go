package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyemirov/treedoc/internal/types"
)

const (
	markdownExtension   = "md"
	minimumFenceLength  = 3
	fenceCharacter      = "`"
	markdownTitleFormat = "# %s\n\n"
	markdownHeadFormat  = "_%s_\n\n"
	markdownSectionHead = "## %s\n\n"
)

// MarkdownDocument renders sections as headings with fenced code blocks.
type MarkdownDocument struct {
	buffer bytes.Buffer
}

// NewMarkdownDocument returns an empty document, headed by title when it is not empty.
func NewMarkdownDocument(title string) *MarkdownDocument {
	document := &MarkdownDocument{}
	if title != "" {
		fmt.Fprintf(&document.buffer, markdownTitleFormat, title)
	}
	return document
}

// AddHeader writes text as an emphasized paragraph.
func (document *MarkdownDocument) AddHeader(text string) error {
	fmt.Fprintf(&document.buffer, markdownHeadFormat, text)
	return nil
}

// AddSection writes title as a heading and body inside a fence.
func (document *MarkdownDocument) AddSection(title string, body string) error {
	fmt.Fprintf(&document.buffer, markdownSectionHead, title)
	fence := fenceFor(body)
	document.buffer.WriteString(fence + "\n")
	document.buffer.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		document.buffer.WriteString("\n")
	}
	document.buffer.WriteString(fence + "\n\n")
	return nil
}

// AddFile writes the file content without the paginated separator.
func (document *MarkdownDocument) AddFile(section types.Section) error {
	return document.AddSection(section.Title, section.Body)
}

// Save writes the markdown to path.
func (document *MarkdownDocument) Save(path string) error {
	if mkdirError := os.MkdirAll(filepath.Dir(path), 0o755); mkdirError != nil {
		return fmt.Errorf(errorCreateDir, filepath.Dir(path), mkdirError)
	}
	return writeFile(path, document.buffer.Bytes())
}

// Extension returns "md".
func (document *MarkdownDocument) Extension() string {
	return markdownExtension
}

// String returns the markdown produced so far.
func (document *MarkdownDocument) String() string {
	return document.buffer.String()
}

// fenceFor returns a backtick fence longer than any backtick run inside body.
func fenceFor(body string) string {
	longestRun := 0
	currentRun := 0
	for _, character := range body {
		if string(character) == fenceCharacter {
			currentRun++
			if currentRun > longestRun {
				longestRun = currentRun
			}
			continue
		}
		currentRun = 0
	}
	return strings.Repeat(fenceCharacter, max(minimumFenceLength, longestRun+1))
}
