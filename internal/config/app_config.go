package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tyemirov/treedoc/internal/types"
)

// Option keys shared by command line flags and TREEDOC_* environment variables.
const (
	KeyOutput    = "output"
	KeyFormat    = "format"
	KeyPageSize  = "page-size"
	KeyFont      = "font"
	KeyCorner    = "corner"
	KeyGitignore = "gitignore"
	KeyTokens    = "tokens"
	KeyModel     = "model"
	KeyCopy      = "copy"
	KeyVerbose   = "verbose"

	environmentPrefix = "TREEDOC"

	errorBindFlags     = "binding flags: %w"
	errorInvalidFormat = "invalid format value '%s'"
	errorInvalidCorner = "invalid corner value '%s': expected %s or %s"
	errorAbsoluteRoot  = "resolving project root %s: %w"
)

// RunOptions holds everything a single export needs besides the traversal rules.
type RunOptions struct {
	Root         string
	OutputPath   string
	Format       string
	PageSize     string
	FontPath     string
	CornerPolicy types.CornerPolicy
	UseGitignore bool
	CountTokens  bool
	TokenModel   string
	CopyTree     bool
	Verbose      bool
}

// NewReader returns a viper instance layering flags over TREEDOC_* environment
// variables. Dashes in keys map to underscores in variable names.
func NewReader(flags *pflag.FlagSet) (*viper.Viper, error) {
	reader := viper.New()
	reader.SetEnvPrefix(environmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if flags != nil {
		if bindError := reader.BindPFlags(flags); bindError != nil {
			return nil, fmt.Errorf(errorBindFlags, bindError)
		}
	}
	return reader, nil
}

// LoadRunOptions reads and validates run options for projectRoot.
func LoadRunOptions(reader *viper.Viper, projectRoot string) (RunOptions, error) {
	absoluteRoot, absoluteError := filepath.Abs(projectRoot)
	if absoluteError != nil {
		return RunOptions{}, fmt.Errorf(errorAbsoluteRoot, projectRoot, absoluteError)
	}

	format := strings.ToLower(strings.TrimSpace(reader.GetString(KeyFormat)))
	if format == "" {
		format = types.FormatPDF
	}
	if !isSupportedFormat(format) {
		return RunOptions{}, fmt.Errorf(errorInvalidFormat, format)
	}

	cornerPolicy, cornerError := parseCornerPolicy(reader.GetString(KeyCorner))
	if cornerError != nil {
		return RunOptions{}, cornerError
	}

	return RunOptions{
		Root:         filepath.Clean(absoluteRoot),
		OutputPath:   strings.TrimSpace(reader.GetString(KeyOutput)),
		Format:       format,
		PageSize:     strings.TrimSpace(reader.GetString(KeyPageSize)),
		FontPath:     ResolveFontPath(absoluteRoot, reader.GetString(KeyFont)),
		CornerPolicy: cornerPolicy,
		UseGitignore: reader.GetBool(KeyGitignore),
		CountTokens:  reader.GetBool(KeyTokens),
		TokenModel:   strings.TrimSpace(reader.GetString(KeyModel)),
		CopyTree:     reader.GetBool(KeyCopy),
		Verbose:      reader.GetBool(KeyVerbose),
	}, nil
}

func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatPDF, types.FormatMarkdown, types.FormatText:
		return true
	default:
		return false
	}
}

func parseCornerPolicy(value string) (types.CornerPolicy, error) {
	switch types.CornerPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.CornerPolicyRaw:
		return types.CornerPolicyRaw, nil
	case types.CornerPolicyFiltered:
		return types.CornerPolicyFiltered, nil
	default:
		return "", fmt.Errorf(errorInvalidCorner, value, types.CornerPolicyRaw, types.CornerPolicyFiltered)
	}
}
