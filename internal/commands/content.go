package commands

import (
	"fmt"
	"iter"
	"os"

	"github.com/tyemirov/treedoc/internal/tokenizer"
	"github.com/tyemirov/treedoc/internal/types"
	"github.com/tyemirov/treedoc/internal/utils"
)

const (
	// unreadableContentFormat replaces the body of a file that could not be read or decoded.
	unreadableContentFormat = "Unable to read file content: %v"

	// warningTokenCountFormat is used when token estimation fails for a file.
	warningTokenCountFormat = "Warning: failed to count tokens for %s: %v"
)

// ReadSections returns a single-pass sequence yielding one section per file.
// Files are read only as the sequence is consumed. Read or decode failures
// never stop the sequence; the section body carries a placeholder instead.
func ReadSections(files []types.CollectedFile, tokenCounter tokenizer.Counter, warn func(string)) iter.Seq[types.Section] {
	return func(yield func(types.Section) bool) {
		for _, file := range files {
			if !yield(readSection(file, tokenCounter, warn)) {
				return
			}
		}
	}
}

func readSection(file types.CollectedFile, tokenCounter tokenizer.Counter, warn func(string)) types.Section {
	section := types.Section{Title: file.RelativePath}

	// #nosec G304
	fileBytes, readError := os.ReadFile(file.Path())
	if readError != nil {
		section.Body = fmt.Sprintf(unreadableContentFormat, readError)
		section.ReadError = readError
		return section
	}
	section.SizeBytes = int64(len(fileBytes))

	textContent, decodeError := utils.DecodeText(fileBytes)
	if decodeError != nil {
		section.Body = fmt.Sprintf(unreadableContentFormat, decodeError)
		section.ReadError = decodeError
		return section
	}
	section.Body = textContent

	if tokenCounter != nil {
		countResult, countError := tokenizer.CountText(tokenCounter, textContent)
		if countError != nil {
			if warn != nil {
				warn(fmt.Sprintf(warningTokenCountFormat, file.RelativePath, countError))
			}
		} else {
			section.Tokens = countResult.Tokens
		}
	}
	return section
}
