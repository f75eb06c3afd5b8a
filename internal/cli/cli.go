// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tyemirov/treedoc/internal/commands"
	"github.com/tyemirov/treedoc/internal/config"
	"github.com/tyemirov/treedoc/internal/filter"
	"github.com/tyemirov/treedoc/internal/output"
	"github.com/tyemirov/treedoc/internal/services/clipboard"
	"github.com/tyemirov/treedoc/internal/services/progress"
	"github.com/tyemirov/treedoc/internal/tokenizer"
	"github.com/tyemirov/treedoc/internal/types"
	"github.com/tyemirov/treedoc/internal/utils"
)

const (
	versionFlagName      = "version"
	versionTemplate      = "treedoc version: %s\n"
	defaultPath          = "."
	rootUse              = "treedoc [root]"
	rootShortDescription = "export a project tree and its source files into one document"
	rootLongDescription  = `treedoc walks a project directory, renders its layout as a box-drawing tree,
and concatenates every source file with an allowed extension into a single
paginated document. Build artifacts, virtual environments and caches are skipped.
Every flag can also be set through a TREEDOC_<FLAG> environment variable.`
	rootUsageExample = `  # Export the current directory to custom_gpts/<name>.pdf
  treedoc

  # Write Markdown next to the project and honor .gitignore
  treedoc ./service --format markdown --output service.md --gitignore

  # Count tokens and copy the tree to the clipboard
  treedoc --tokens --model gpt-4o --copy`

	outputFlagDescription    = "document path (default <root>/custom_gpts/<root name>.<ext>)"
	formatFlagDescription    = "document format: pdf, markdown or text"
	pageSizeFlagDescription  = "PDF page size such as A3, A4 or Letter"
	fontFlagDescription      = "TrueType font used for PDF text (default msyh.ttf lookup)"
	cornerFlagDescription    = "terminal glyph placement: raw (last listed entry) or filtered (last shown entry)"
	gitignoreFlagDescription = "also skip paths matched by .gitignore files"
	tokensFlagDescription    = "include token counts in the summary"
	modelFlagDescription     = "tokenizer model to use for token counting"
	copyFlagDescription      = "copy the rendered tree to the clipboard"
	verboseFlagDescription   = "log per-file details"
	versionFlagDescription   = "display application version"

	progressTitle = "Processing"

	startingMessage          = "Starting"
	workingDirectoryFormat   = "Current working directory: %s"
	documentSavedFormat      = "Document saved to %s"
	fallbackFontMessage      = "No TrueType font found, using the built-in Latin font"
	warningUnreadableFormat  = "Warning: %d file(s) could not be read and were exported with a placeholder"
	warningCopyFailedFormat  = "Warning: failed to copy tree to clipboard: %v"
	treeCopiedMessage        = "Tree copied to clipboard"
	errorWorkingDirectory    = "unable to determine working directory: %w"
	errorPathMissingFormat   = "path '%s' does not exist"
	errorStatFormat          = "stat failed for '%s': %w"
	errorRootNotDirectory    = "path '%s' is not a directory"
	errorTokenizerInitFormat = "initializing tokenizer: %w"
)

// dependencies holds the collaborators a run talks to outside the filesystem.
type dependencies struct {
	newLogger      func(verbose bool) (*zap.Logger, error)
	copier         clipboard.Copier
	progressWriter io.Writer
	now            func() time.Time
}

func defaultDependencies() dependencies {
	return dependencies{
		newLogger:      utils.NewApplicationLogger,
		copier:         clipboard.NewService(),
		progressWriter: os.Stdout,
		now:            time.Now,
	}
}

// Execute runs the treedoc application.
func Execute() error {
	rootCommand := createRootCommand(defaultDependencies())
	rootCommand.SetArgs(normalizeToggleArguments(rootCommand.Flags(), os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(runtimeDependencies dependencies) *cobra.Command {
	var showVersion bool
	var useGitignore, countTokens, copyTree, verbose bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			reader, readerError := config.NewReader(command.Flags())
			if readerError != nil {
				return readerError
			}
			runOptions, loadError := config.LoadRunOptions(reader, rootArgument)
			if loadError != nil {
				return loadError
			}
			return runExport(runOptions, runtimeDependencies)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.String(config.KeyOutput, "", outputFlagDescription)
	flagSet.String(config.KeyFormat, types.FormatPDF, formatFlagDescription)
	flagSet.String(config.KeyPageSize, output.DefaultPageSize, pageSizeFlagDescription)
	flagSet.String(config.KeyFont, "", fontFlagDescription)
	flagSet.String(config.KeyCorner, string(types.CornerPolicyRaw), cornerFlagDescription)
	flagSet.String(config.KeyModel, tokenizer.DefaultModel, modelFlagDescription)
	registerToggleFlag(flagSet, &useGitignore, config.KeyGitignore, gitignoreFlagDescription)
	registerToggleFlag(flagSet, &countTokens, config.KeyTokens, tokensFlagDescription)
	registerToggleFlag(flagSet, &copyTree, config.KeyCopy, copyFlagDescription)
	registerToggleFlag(flagSet, &verbose, config.KeyVerbose, verboseFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runExport produces one document for runOptions and reports the outcome.
func runExport(runOptions config.RunOptions, runtimeDependencies dependencies) error {
	logger, loggerError := runtimeDependencies.newLogger(runOptions.Verbose)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info(startingMessage)
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(errorWorkingDirectory, workingDirectoryError)
	}
	logger.Info(fmt.Sprintf(workingDirectoryFormat, workingDirectory))

	if validationError := validateRoot(runOptions.Root); validationError != nil {
		return validationError
	}

	extension, extensionError := output.ExtensionForFormat(runOptions.Format)
	if extensionError != nil {
		return extensionError
	}
	outputPath, outputPathError := config.ResolveOutputPath(runOptions.Root, runOptions.OutputPath, extension)
	if outputPathError != nil {
		return outputPathError
	}

	rules := config.Default().WithOutputExcluded(outputPath, runOptions.Root)
	matcher, matcherError := filter.NewMatcher(runOptions.Root, rules.IgnoreDirRules, rules.IgnoreFileRules)
	if matcherError != nil {
		return matcherError
	}
	if runOptions.UseGitignore {
		if gitignoreError := matcher.WithGitignore(); gitignoreError != nil {
			return gitignoreError
		}
	}

	var tokenCounter tokenizer.Counter
	var tokenModel string
	if runOptions.CountTokens {
		createdCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: runOptions.TokenModel})
		if counterError != nil {
			return fmt.Errorf(errorTokenizerInitFormat, counterError)
		}
		tokenCounter = createdCounter
		tokenModel = resolvedModel
	}

	if runOptions.Format == types.FormatPDF && runOptions.FontPath == "" {
		logger.Debug(fallbackFontMessage)
	}
	document, documentError := output.New(runOptions.Format, output.Options{
		Title:    filepath.Base(runOptions.Root),
		PageSize: runOptions.PageSize,
		FontPath: runOptions.FontPath,
	})
	if documentError != nil {
		return documentError
	}

	result, exportError := commands.Export(commands.ExportOptions{
		Root:              runOptions.Root,
		OutputPath:        outputPath,
		Matcher:           matcher,
		AllowedExtensions: rules.AllowedExtensions,
		CornerPolicy:      runOptions.CornerPolicy,
		Document:          document,
		Progress:          progress.NewBarReporter(runtimeDependencies.progressWriter, progressTitle),
		TokenCounter:      tokenCounter,
		TokenModel:        tokenModel,
		Logger:            logger,
		Now:               runtimeDependencies.now,
	})
	if exportError != nil {
		return exportError
	}

	logger.Info(fmt.Sprintf(documentSavedFormat, result.OutputPath))
	logger.Info(output.FormatSummaryLine(result.Summary()))
	if result.Unreadable > 0 {
		logger.Warn(fmt.Sprintf(warningUnreadableFormat, result.Unreadable))
	}

	if runOptions.CopyTree && runtimeDependencies.copier != nil {
		if copyError := runtimeDependencies.copier.Copy(result.Tree); copyError != nil {
			logger.Warn(fmt.Sprintf(warningCopyFailedFormat, copyError))
		} else {
			logger.Info(treeCopiedMessage)
		}
	}
	return nil
}

func validateRoot(rootPath string) error {
	rootInformation, statError := os.Stat(rootPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, rootPath)
		}
		return fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	if !rootInformation.IsDir() {
		return fmt.Errorf(errorRootNotDirectory, rootPath)
	}
	return nil
}
