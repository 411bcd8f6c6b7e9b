package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To      int
	Output  string
	Compact bool
}

// ConvertResult describes a conversion written to a file.
type ConvertResult struct {
	File   string `json:"file" yaml:"file"`
	From   int    `json:"from" yaml:"from"`
	To     int    `json:"to" yaml:"to"`
	Output string `json:"output" yaml:"output"`
	ID     string `json:"id" yaml:"id"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode an IR document in another format version",
		Long: `Decode an IR document and encode it in the requested format version.

Both versions carry the same content, so conversion is lossless.
Version 2 output leaves out the "doc" key of modules that have no doc.
Without --output the document goes to stdout.

Examples:
  morphir-ir convert morphir-ir.json --to 2
  morphir-ir convert old.json --to 3 -o new.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.To, "to", 0, "target format version (default format_version from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the document to a file")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "write compact JSON")

	return cmd
}

func runConvert(opts *ConvertOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	target := ir.FormatVersion(opts.To)
	if opts.To == 0 {
		target = opts.config().Version()
	}
	if !target.IsSupported() {
		return formatter.Fail(ExitCommandError, ErrCodeVersion,
			fmt.Sprintf("unsupported target format version %d: supported %v", opts.To, ir.SupportedFormatVersions), nil)
	}

	loaded, err := opts.load(cmd, path)
	if err != nil {
		return loadFailure(formatter, err)
	}

	doc, err := codec.EncodeVersion(loaded.Distribution(), target)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	data, err := marshalDocument(doc, opts.Compact)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	if opts.Output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("error writing %s: %v", opts.Output, err), nil)
	}
	id, err := wire.ContentID(doc)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	opts.logger().Debug("converted document",
		zap.String("path", path),
		zap.Int("from", int(loaded.Document.FormatVersion)),
		zap.Int("to", int(target)),
		zap.String("output", opts.Output),
	)

	result := ConvertResult{
		File:   path,
		From:   int(loaded.Document.FormatVersion),
		To:     int(target),
		Output: opts.Output,
		ID:     id,
	}
	if formatter.Structured() {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s Converted %s (format version %d) to %s (format version %d)\n",
		okMark(), path, result.From, opts.Output, result.To)
	return nil
}

// marshalDocument renders doc as indented or compact JSON with a trailing
// newline.
func marshalDocument(doc wire.Value, compact bool) ([]byte, error) {
	var data []byte
	var err error
	if compact {
		data, err = wire.Marshal(doc)
	} else {
		data, err = wire.MarshalIndent(doc, "  ")
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
