package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/query"
	"github.com/roach88/morphir-ir/internal/wire"
)

// HashResult holds hash output.
type HashResult struct {
	File          string       `json:"file" yaml:"file"`
	FormatVersion int          `json:"formatVersion" yaml:"formatVersion"`
	ID            string       `json:"id" yaml:"id"`
	Modules       []ModuleHash `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ModuleHash is the content hash of one module entry.
type ModuleHash struct {
	Name string `json:"name" yaml:"name"`
	Hash string `json:"hash" yaml:"hash"`
}

// HashOptions holds flags for the hash command.
type HashOptions struct {
	*RootOptions
	Modules bool
}

// NewHashCommand creates the hash command.
func NewHashCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HashOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the content id of an IR document",
		Long: `Print the content id of an IR document.

The id is a SHA-256 over the canonical JSON of the decoded document
re-encoded in its own format version, so formatting and key order do
not change it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Modules, "modules", false, "also hash each module entry")

	return cmd
}

func runHash(opts *HashOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	loaded, err := opts.load(cmd, path)
	if err != nil {
		return loadFailure(formatter, err)
	}
	version := loaded.Document.FormatVersion
	doc, err := codec.EncodeVersion(loaded.Distribution(), version)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	id, err := wire.ContentID(doc)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	result := HashResult{File: path, FormatVersion: int(version), ID: id}
	if opts.Modules {
		hashes, err := codec.ModuleHashes(doc)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		for i, p := range query.ModuleNames(loaded.Distribution()) {
			result.Modules = append(result.Modules, ModuleHash{Name: p.Title(), Hash: hashes[i]})
		}
	}

	if formatter.Structured() {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, result.ID)
	for _, m := range result.Modules {
		fmt.Fprintf(formatter.Writer, "%s  %s\n", m.Hash, m.Name)
	}
	return nil
}
