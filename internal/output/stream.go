package output

import "github.com/tyemirov/treedoc/internal/types"

// Document is a paginated text artifact assembled section by section.
type Document interface {
	// AddHeader writes a prominent single line, such as the generation time.
	AddHeader(text string) error
	// AddSection writes a titled block of preformatted text such as the tree diagram.
	AddSection(title string, body string) error
	// AddFile writes a titled block holding one file's content.
	AddFile(section types.Section) error
	// Save finalizes the document and writes it to path, replacing any existing file.
	Save(path string) error
	// Extension returns the file extension, without a dot, for the document format.
	Extension() string
}
