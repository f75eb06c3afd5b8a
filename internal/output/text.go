package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tyemirov/treedoc/internal/types"
)

const (
	textExtension = "txt"

	textSectionHeaderFormat = "--- %s ---\n"
	textFileHeaderFormat    = "File: %s\n"
	textFileFooterFormat    = "End of file: %s\n"
)

// TextDocument renders sections as plain text.
type TextDocument struct {
	buffer bytes.Buffer
}

// NewTextDocument returns an empty plain-text document.
func NewTextDocument() *TextDocument {
	return &TextDocument{}
}

// AddHeader writes text on its own line followed by a blank line.
func (document *TextDocument) AddHeader(text string) error {
	fmt.Fprintln(&document.buffer, text)
	fmt.Fprintln(&document.buffer)
	return nil
}

// AddSection writes a titled block.
func (document *TextDocument) AddSection(title string, body string) error {
	fmt.Fprintf(&document.buffer, textSectionHeaderFormat, title)
	fmt.Fprintln(&document.buffer, body)
	return nil
}

// AddFile writes a file block delimited by start and end markers.
func (document *TextDocument) AddFile(section types.Section) error {
	fmt.Fprintf(&document.buffer, textFileHeaderFormat, section.Title)
	fmt.Fprintln(&document.buffer, section.Body)
	fmt.Fprintf(&document.buffer, textFileFooterFormat, section.Title)
	fmt.Fprintln(&document.buffer, separatorLine)
	return nil
}

// Save writes the text to path.
func (document *TextDocument) Save(path string) error {
	if mkdirError := os.MkdirAll(filepath.Dir(path), 0o755); mkdirError != nil {
		return fmt.Errorf(errorCreateDir, filepath.Dir(path), mkdirError)
	}
	return writeFile(path, document.buffer.Bytes())
}

// Extension returns "txt".
func (document *TextDocument) Extension() string {
	return textExtension
}

// String returns the text produced so far.
func (document *TextDocument) String() string {
	return document.buffer.String()
}
