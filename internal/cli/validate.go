package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/query"
	"github.com/roach88/morphir-ir/internal/schema"
	"github.com/roach88/morphir-ir/internal/wire"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	SkipSchema bool
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid         bool           `json:"valid" yaml:"valid"`
	File          string         `json:"file" yaml:"file"`
	FormatVersion int            `json:"formatVersion,omitempty" yaml:"formatVersion,omitempty"`
	Package       string         `json:"package,omitempty" yaml:"package,omitempty"`
	Modules       int            `json:"modules" yaml:"modules"`
	Issues        []schema.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an IR document",
		Long: `Validate a Morphir IR document.

The document is checked against the envelope schema of its declared
format version, reporting every violation with its line and column,
and then fully decoded. Use "-" to read from stdin.

Exit codes:
  0 - Document is valid
  1 - Document is not valid IR
  2 - Command error (file not found, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.SkipSchema, "skip-schema", false, "skip the envelope schema check and only decode")

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	data, err := ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return loadFailure(formatter, err)
	}

	if _, err := wire.Parse(data); err != nil {
		return loadFailure(formatter, &LoadError{Code: ErrCodeSyntax, Message: err.Error(), Err: err})
	}

	if !opts.SkipSchema {
		if err := validateSchema(data, path); err != nil {
			var schemaErr *schema.Error
			if errors.As(err, &schemaErr) {
				return outputSchemaIssues(formatter, path, schemaErr.Issues)
			}
			if codec.IsUnsupportedVersion(err) {
				return loadFailure(formatter, &LoadError{Code: ErrCodeVersion, Message: err.Error(), Err: err})
			}
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		logger.Debug("schema check passed", zap.String("path", path))
	}

	doc, err := DecodeData(data, opts.config().Decode.MaxDepth)
	if err != nil {
		return loadFailure(formatter, err)
	}

	result := ValidationResult{
		Valid:         true,
		File:          path,
		FormatVersion: int(doc.FormatVersion),
		Package:       doc.Distribution.PackageName().String(),
		Modules:       query.Modules(doc.Distribution).Len(),
	}
	if formatter.Structured() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s %s is valid (format version %d, package %s, %d module(s))\n",
		okMark(), path, result.FormatVersion, result.Package, result.Modules)
	return nil
}

func validateSchema(data []byte, path string) error {
	v, err := schema.New()
	if err != nil {
		return err
	}
	return v.Validate(data, path)
}

// outputSchemaIssues outputs every schema violation.
func outputSchemaIssues(formatter *OutputFormatter, path string, issues []schema.Issue) error {
	message := fmt.Sprintf("validation failed with %d schema violation(s)", len(issues))

	if formatter.Structured() {
		if err := formatter.encode(CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, File: path, Issues: issues},
			Error:  &CLIError{Code: ErrCodeSchema, Message: issues[0].Message},
		}); err != nil {
			return err
		}
		return NewExitError(ExitFailure, message)
	}

	fmt.Fprintf(formatter.Writer, "%s Validation failed: %s\n\n", failMark(), path)
	for _, is := range issues {
		if is.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d, column %d\n", is.Line, is.Column)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", ErrCodeSchema, is.Message)
	}
	return NewExitError(ExitFailure, message)
}
