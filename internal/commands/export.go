package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tyemirov/treedoc/internal/output"
	"github.com/tyemirov/treedoc/internal/services/progress"
	"github.com/tyemirov/treedoc/internal/tokenizer"
	"github.com/tyemirov/treedoc/internal/types"
	"github.com/tyemirov/treedoc/internal/utils"
)

const (
	generatedAtFormat      = "Generated at: %s"
	treeSectionTitleFormat = "Project directory tree, root: %s"

	errorDocumentMissing  = "export requires a document"
	errorAddSectionFormat = "adding section %s: %w"
	errorProgressFormat   = "progress reporting: %w"
	errorSaveFormat       = "saving %s: %w"
)

// ExportOptions configures a single export run.
type ExportOptions struct {
	Root              string
	OutputPath        string
	Matcher           PathMatcher
	AllowedExtensions []string
	CornerPolicy      types.CornerPolicy
	Document          output.Document
	Progress          progress.Reporter
	TokenCounter      tokenizer.Counter
	TokenModel        string
	Logger            *zap.Logger
	Now               func() time.Time
}

// ExportResult describes what an export produced.
type ExportResult struct {
	OutputPath string
	Tree       string
	Files      int
	Unreadable int
	Bytes      int64
	Tokens     int
	TokenModel string
}

// Summary returns aggregate figures for the exported files.
func (result ExportResult) Summary() types.OutputSummary {
	return types.OutputSummary{
		TotalFiles:  result.Files,
		TotalSize:   utils.FormatFileSize(result.Bytes),
		TotalTokens: result.Tokens,
		Model:       result.TokenModel,
	}
}

// Export renders the tree of options.Root, appends one section per collected
// file, and saves the document to options.OutputPath. Everything runs in
// sequence on the calling goroutine.
func Export(options ExportOptions) (ExportResult, error) {
	if options.Document == nil {
		return ExportResult{}, fmt.Errorf(errorDocumentMissing)
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := options.Progress
	if reporter == nil {
		reporter = progress.Discard{}
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	warn := func(message string) {
		logger.Warn(message)
	}

	absoluteRoot, absoluteError := filepath.Abs(options.Root)
	if absoluteError != nil {
		return ExportResult{}, fmt.Errorf(errorAbsolutePathFormat, options.Root, absoluteError)
	}

	treeBuilder := &TreeBuilder{Matcher: options.Matcher, CornerPolicy: options.CornerPolicy, Warn: warn}
	treeEntries, treeError := treeBuilder.BuildEntries(absoluteRoot)
	if treeError != nil {
		return ExportResult{}, treeError
	}
	result := ExportResult{OutputPath: options.OutputPath, Tree: RenderTree(treeEntries)}
	if options.TokenCounter != nil {
		result.TokenModel = options.TokenModel
	}

	if headerError := options.Document.AddHeader(fmt.Sprintf(generatedAtFormat, utils.FormatTimestamp(now()))); headerError != nil {
		return result, headerError
	}
	treeTitle := fmt.Sprintf(treeSectionTitleFormat, filepath.Base(absoluteRoot))
	if sectionError := options.Document.AddSection(treeTitle, result.Tree); sectionError != nil {
		return result, fmt.Errorf(errorAddSectionFormat, treeTitle, sectionError)
	}

	collector := &FileCollector{Matcher: options.Matcher, AllowedExtensions: options.AllowedExtensions, Warn: warn}
	collectedFiles, collectError := collector.CollectFiles(absoluteRoot)
	if collectError != nil {
		return result, collectError
	}

	if startError := reporter.Start(len(collectedFiles)); startError != nil {
		return result, fmt.Errorf(errorProgressFormat, startError)
	}
	for section := range ReadSections(collectedFiles, options.TokenCounter, warn) {
		if section.ReadError != nil {
			result.Unreadable++
			logger.Debug("unreadable file", zap.String("path", section.Title), zap.Error(section.ReadError))
		}
		if fileError := options.Document.AddFile(section); fileError != nil {
			_ = reporter.Stop()
			return result, fmt.Errorf(errorAddSectionFormat, section.Title, fileError)
		}
		result.Files++
		result.Bytes += section.SizeBytes
		result.Tokens += section.Tokens
		reporter.Advance(section.Title)
	}
	if stopError := reporter.Stop(); stopError != nil {
		return result, fmt.Errorf(errorProgressFormat, stopError)
	}

	if saveError := options.Document.Save(options.OutputPath); saveError != nil {
		return result, fmt.Errorf(errorSaveFormat, options.OutputPath, saveError)
	}
	return result, nil
}
