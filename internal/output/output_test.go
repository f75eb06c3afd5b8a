package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyemirov/treedoc/internal/output"
	"github.com/tyemirov/treedoc/internal/types"
)

func TestNewSelectsDocumentByFormat(t *testing.T) {
	testCases := []struct {
		format    string
		extension string
	}{
		{format: types.FormatPDF, extension: "pdf"},
		{format: "", extension: "pdf"},
		{format: types.FormatMarkdown, extension: "md"},
		{format: "MD", extension: "md"},
		{format: types.FormatText, extension: "txt"},
	}
	for _, testCase := range testCases {
		document, err := output.New(testCase.format, output.Options{})
		require.NoError(t, err, testCase.format)
		require.Equal(t, testCase.extension, document.Extension(), testCase.format)

		extension, err := output.ExtensionForFormat(testCase.format)
		require.NoError(t, err)
		require.Equal(t, testCase.extension, extension)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := output.New("docx", output.Options{})
	require.Error(t, err)

	_, err = output.ExtensionForFormat("docx")
	require.Error(t, err)
}

func TestFileSectionBodyFramesContent(t *testing.T) {
	body := output.FileSectionBody("print('hi')")
	require.Equal(t, "\nprint('hi')\n"+strings.Repeat("-", 50), body)
}

func TestTextDocumentLayout(t *testing.T) {
	document := output.NewTextDocument()
	require.NoError(t, document.AddHeader("Generated at: 2024-01-02 03:04"))
	require.NoError(t, document.AddSection("Project directory tree, root: demo", "└── a.py\n"))
	require.NoError(t, document.AddFile(types.Section{Title: "a.py", Body: "x = 1"}))

	rendered := document.String()
	require.Contains(t, rendered, "Generated at: 2024-01-02 03:04\n\n")
	require.Contains(t, rendered, "--- Project directory tree, root: demo ---\n└── a.py\n")
	require.Contains(t, rendered, "File: a.py\nx = 1\nEnd of file: a.py\n")

	outputPath := filepath.Join(t.TempDir(), "nested", "demo.txt")
	require.NoError(t, document.Save(outputPath))
	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, rendered, string(written))
}

func TestMarkdownDocumentFencesContent(t *testing.T) {
	document := output.NewMarkdownDocument("demo")
	require.NoError(t, document.AddFile(types.Section{Title: "README.md", Body: "```go\nfmt.Println()\n```"}))

	rendered := document.String()
	require.True(t, strings.HasPrefix(rendered, "# demo\n\n"))
	require.Contains(t, rendered, "## README.md\n\n````\n```go\nfmt.Println()\n```\n````\n\n")
}

func TestPDFDocumentWritesFile(t *testing.T) {
	document, err := output.NewPDFDocument(output.Options{Title: "demo", FontPath: filepath.Join(t.TempDir(), "missing.ttf")})
	require.NoError(t, err)
	require.NoError(t, document.AddHeader("Generated at: 2024-01-02 03:04"))
	require.NoError(t, document.AddSection("Project directory tree, root: demo", "├── a.py\n└── b/\n"))
	require.NoError(t, document.AddFile(types.Section{Title: "a.py", Body: "def main():\n\treturn 1\n"}))

	outputPath := filepath.Join(t.TempDir(), "out", "demo.pdf")
	require.NoError(t, document.Save(outputPath))

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(written), "%PDF-"))
}

func TestPDFDocumentPaginatesLongContent(t *testing.T) {
	document, err := output.NewPDFDocument(output.Options{PageSize: "A4"})
	require.NoError(t, err)
	require.NoError(t, document.AddFile(types.Section{Title: "long.txt", Body: strings.Repeat("line\n", 400)}))
	require.Greater(t, document.PageCount(), 1)
}

func TestPDFDocumentRejectsUnknownPageSize(t *testing.T) {
	_, err := output.NewPDFDocument(output.Options{PageSize: "Z9"})
	require.Error(t, err)
}

func TestFormatSummaryLine(t *testing.T) {
	require.Equal(t, "Summary: 1 file, 12b", output.FormatSummaryLine(types.OutputSummary{TotalFiles: 1, TotalSize: "12b"}))
	require.Equal(t,
		"Summary: 3 files, 2.5kb, 40 tokens (model: gpt-4o)",
		output.FormatSummaryLine(types.OutputSummary{TotalFiles: 3, TotalSize: "2.5kb", TotalTokens: 40, Model: "gpt-4o"}),
	)
}
