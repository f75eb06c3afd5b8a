package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tyemirov/treedoc/internal/types"
)

const (
	pdfExtension = "pdf"

	// DefaultPageSize is used when no page size is configured.
	DefaultPageSize    = "A3"
	pageOrientation    = "P"
	pageUnit           = "mm"
	unicodeFontFamily  = "treedoc-unicode"
	fallbackFontFamily = "Helvetica"
	regularStyle       = ""
	creatorName        = "treedoc"

	headerFontSize     = 18.0
	titleFontSize      = 14.0
	bodyFontSize       = 12.0
	footerFontSize     = 8.0
	titleLineHeight    = 10.0
	bodyLineHeight     = 8.0
	sectionGap         = 10.0
	footerOffset       = -15.0
	pageNumberTemplate = "%d/{nb}"

	errorCreatePDF = "creating %s pdf: %w"
	errorLoadFont  = "loading font %s: %w"
	errorRenderPDF = "rendering pdf section %q: %w"
	errorCreateDir = "creating output directory %s: %w"
)

// PDFDocument renders sections onto fixed-size pages.
type PDFDocument struct {
	pdf        *fpdf.Fpdf
	fontFamily string
	translate  func(string) string
}

// NewPDFDocument creates a PDF with one open page. When options.FontPath names
// a readable TrueType file it is used for all text, which allows non-Latin
// scripts. Otherwise the core Helvetica font is used and text is transcoded to
// cp1252.
func NewPDFDocument(options Options) (*PDFDocument, error) {
	pageSize := strings.TrimSpace(options.PageSize)
	if pageSize == "" {
		pageSize = DefaultPageSize
	}
	pdf := fpdf.New(pageOrientation, pageUnit, pageSize, "")
	if pdf.Err() {
		return nil, fmt.Errorf(errorCreatePDF, pageSize, pdf.Error())
	}

	document := &PDFDocument{
		pdf:        pdf,
		fontFamily: fallbackFontFamily,
		translate:  func(text string) string { return text },
	}
	if fontAvailable(options.FontPath) {
		pdf.AddUTF8Font(unicodeFontFamily, regularStyle, options.FontPath)
		if pdf.Err() {
			return nil, fmt.Errorf(errorLoadFont, options.FontPath, pdf.Error())
		}
		document.fontFamily = unicodeFontFamily
	} else {
		document.translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	if options.Title != "" {
		pdf.SetTitle(options.Title, true)
	}
	pdf.SetCreator(creatorName, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(footerOffset)
		pdf.SetFont(document.fontFamily, regularStyle, footerFontSize)
		pdf.CellFormat(0, titleLineHeight, fmt.Sprintf(pageNumberTemplate, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont(document.fontFamily, regularStyle, bodyFontSize)
	return document, nil
}

// AddHeader writes text in the header font on its own line.
func (document *PDFDocument) AddHeader(text string) error {
	document.pdf.SetFont(document.fontFamily, regularStyle, headerFontSize)
	document.pdf.CellFormat(0, titleLineHeight, document.translate(text), "", 1, "L", false, 0, "")
	return document.check(text)
}

// AddSection writes title followed by the wrapped body and a trailing gap.
func (document *PDFDocument) AddSection(title string, body string) error {
	document.pdf.SetFont(document.fontFamily, regularStyle, titleFontSize)
	document.pdf.CellFormat(0, titleLineHeight, document.translate(title), "", 1, "L", false, 0, "")
	document.pdf.SetFont(document.fontFamily, regularStyle, bodyFontSize)
	document.pdf.MultiCell(0, bodyLineHeight, document.translate(expandTabs(body)), "", "L", false)
	document.pdf.Ln(sectionGap)
	return document.check(title)
}

// AddFile writes a file section framed by a leading blank line and a dashed rule.
func (document *PDFDocument) AddFile(section types.Section) error {
	return document.AddSection(section.Title, FileSectionBody(section.Body))
}

// Save writes the PDF to path, creating the parent directory when needed.
func (document *PDFDocument) Save(path string) error {
	if mkdirError := os.MkdirAll(filepath.Dir(path), 0o755); mkdirError != nil {
		return fmt.Errorf(errorCreateDir, filepath.Dir(path), mkdirError)
	}
	if outputError := document.pdf.OutputFileAndClose(path); outputError != nil {
		return fmt.Errorf(errorWriteDocument, path, outputError)
	}
	return nil
}

// Extension returns "pdf".
func (document *PDFDocument) Extension() string {
	return pdfExtension
}

// PageCount reports the number of pages produced so far.
func (document *PDFDocument) PageCount() int {
	return document.pdf.PageCount()
}

func (document *PDFDocument) check(label string) error {
	if document.pdf.Err() {
		return fmt.Errorf(errorRenderPDF, label, document.pdf.Error())
	}
	return nil
}

func fontAvailable(fontPath string) bool {
	if strings.TrimSpace(fontPath) == "" {
		return false
	}
	fileInformation, statError := os.Stat(fontPath)
	return statError == nil && !fileInformation.IsDir()
}
