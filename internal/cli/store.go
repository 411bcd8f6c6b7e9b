package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/store"
)

// StoreOptions holds flags shared by the store subcommands.
type StoreOptions struct {
	*RootOptions
	Database string
}

// PutResult holds store put output.
type PutResult struct {
	Record  store.Record `json:"record" yaml:"record"`
	Created bool         `json:"created" yaml:"created"`
}

// VerifyResult holds store verify output.
type VerifyResult struct {
	Checked    int              `json:"checked" yaml:"checked"`
	Mismatches []store.Mismatch `json:"mismatches" yaml:"mismatches"`
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep decoded distributions in a local registry",
		Long: `Keep decoded distributions in a local SQLite registry.

Documents are stored under their content id, so putting the same
content twice is a no-op. Each stored distribution is indexed by module
and by the modules it imports.

The registry path defaults to store.path from the config file.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default store.path from config)")

	cmd.AddCommand(newStorePutCommand(opts))
	cmd.AddCommand(newStoreGetCommand(opts))
	cmd.AddCommand(newStoreListCommand(opts))
	cmd.AddCommand(newStoreFindCommand(opts))
	cmd.AddCommand(newStoreImportsCommand(opts))
	cmd.AddCommand(newStoreDependentsCommand(opts))
	cmd.AddCommand(newStoreVerifyCommand(opts))

	return cmd
}

func (o *StoreOptions) dbPath() string {
	if o.Database != "" {
		return o.Database
	}
	return o.config().Store.Path
}

// open opens the registry. Only put may create it.
func (o *StoreOptions) open(formatter *OutputFormatter, create bool) (*store.Store, error) {
	path := o.dbPath()
	if create {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("error creating %s: %v", dir, err), nil)
			}
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("store not found: %s", path), nil)
	}

	st, err := store.Open(path, store.WithLogger(o.logger()))
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("failed to open store: %v", err), nil)
	}
	return st, nil
}

func storeFailure(formatter *OutputFormatter, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return formatter.Fail(ExitFailure, ErrCodeNotFound, err.Error(), nil)
	}
	return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
}

func newStorePutCommand(opts *StoreOptions) *cobra.Command {
	var version int
	var source string

	cmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Decode a document and store it",
		Long: `Decode a document and store it, encoded in the given format version.

Exit codes:
  0 - Stored, or already present
  1 - Document is not valid IR
  2 - Command error`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			target := ir.FormatVersion(version)
			if version == 0 {
				target = opts.config().Version()
			}

			loaded, err := opts.load(cmd, args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			st, err := opts.open(formatter, true)
			if err != nil {
				return err
			}
			defer st.Close()

			if source == "" {
				source = args[0]
			}
			rec, created, err := st.Put(background(cmd.Context()), loaded.Distribution(), target, source)
			if err != nil {
				if codec.IsUnsupportedVersion(err) {
					return formatter.Fail(ExitCommandError, ErrCodeVersion, err.Error(), nil)
				}
				return storeFailure(formatter, err)
			}

			if formatter.Structured() {
				return formatter.Success(PutResult{Record: rec, Created: created})
			}
			verb := "Stored"
			if !created {
				verb = "Already stored"
			}
			fmt.Fprintf(formatter.Writer, "%s %s %s (package %s, format version %d, %d module(s))\n",
				okMark(), verb, rec.ID, rec.Package, rec.FormatVersion, rec.Modules)
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "format version to store (default format_version from config)")
	cmd.Flags().StringVar(&source, "source", "", "source label recorded with the document (default the file path)")

	return cmd
}

func newStoreGetCommand(opts *StoreOptions) *cobra.Command {
	var output string
	var latest bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a stored document as JSON",
		Long: `Write a stored document as JSON, in the format version it was stored in.

With --latest the argument is a package name and the most recently
stored distribution of that package is written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			var rec store.Record
			var d ir.Distribution
			if latest {
				pkg, perr := ir.ParsePath(args[0])
				if perr != nil {
					return formatter.Fail(ExitCommandError, ErrCodeInvalidName, perr.Error(), nil)
				}
				rec, d, err = st.Latest(background(cmd.Context()), pkg)
			} else {
				rec, d, err = st.Get(background(cmd.Context()), args[0])
			}
			if err != nil {
				return storeFailure(formatter, err)
			}

			doc, err := codec.EncodeVersion(d, rec.FormatVersion)
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
			}
			data, err := marshalDocument(doc, false)
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("error writing %s: %v", output, err), nil)
			}
			if formatter.Structured() {
				return formatter.Success(rec)
			}
			fmt.Fprintf(formatter.Writer, "%s Wrote %s to %s\n", okMark(), rec.ID, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file")
	cmd.Flags().BoolVar(&latest, "latest", false, "treat the argument as a package name")

	return cmd
}

func newStoreListCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored distributions in insertion order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.List(background(cmd.Context()))
			if err != nil {
				return storeFailure(formatter, err)
			}
			return outputRecords(formatter, records)
		},
	}
}

func newStoreFindCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "find <module>",
		Short:         "Find stored distributions that define a module",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			p, err := ir.ParsePath(args[0])
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidName, err.Error(), nil)
			}

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			modules, err := st.FindModule(background(cmd.Context()), p)
			if err != nil {
				return storeFailure(formatter, err)
			}
			if len(modules) == 0 {
				return notFound(formatter, "module", args[0])
			}

			if formatter.Structured() {
				return formatter.Success(modules)
			}
			t := newTable(formatter.Writer, "DISTRIBUTION", "PACKAGE", "MODULE", "ACCESS", "TYPES", "VALUES")
			for _, m := range modules {
				t.addRow(shortID(m.DistributionID), m.Package, m.Path, m.Access, fmt.Sprint(m.Types), fmt.Sprint(m.Values))
			}
			t.render()
			return nil
		},
	}
}

func newStoreImportsCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "imports <id>",
		Short:         "List the module imports of a stored distribution",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := background(cmd.Context())
			if _, err := st.Record(ctx, args[0]); err != nil {
				return storeFailure(formatter, err)
			}
			imports, err := st.Imports(ctx, args[0])
			if err != nil {
				return storeFailure(formatter, err)
			}

			if formatter.Structured() {
				return formatter.Success(imports)
			}
			t := newTable(formatter.Writer, "MODULE", "PACKAGE", "IMPORTS")
			for _, imp := range imports {
				t.addRow(imp.Module, imp.Package, imp.Target)
			}
			t.render()
			return nil
		},
	}
}

func newStoreDependentsCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "dependents <package>",
		Short:         "List stored distributions that import from a package",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			pkg, err := ir.ParsePath(args[0])
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidName, err.Error(), nil)
			}

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.Dependents(background(cmd.Context()), pkg)
			if err != nil {
				return storeFailure(formatter, err)
			}
			return outputRecords(formatter, records)
		},
	}
}

func newStoreVerifyCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every stored document against its content id",
		Long: `Decode every stored document, re-encode it and recompute its content id.

Exit codes:
  0 - Every document matches its id
  1 - At least one document does not
  2 - Command error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			st, err := opts.open(formatter, false)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := background(cmd.Context())
			records, err := st.List(ctx)
			if err != nil {
				return storeFailure(formatter, err)
			}
			mismatches, err := st.Verify(ctx)
			if err != nil {
				return storeFailure(formatter, err)
			}
			result := VerifyResult{Checked: len(records), Mismatches: mismatches}

			if len(mismatches) > 0 {
				if formatter.Structured() {
					if err := formatter.encode(CLIResponse{
						Status: "error",
						Data:   result,
						Error:  &CLIError{Code: ErrCodeMismatch, Message: mismatches[0].Reason},
					}); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(formatter.Writer, "%s %d of %d document(s) do not match their id\n",
						failMark(), len(mismatches), result.Checked)
					for _, m := range mismatches {
						fmt.Fprintf(formatter.Writer, "  %s: %s\n", m.ID, m.Reason)
					}
				}
				return NewExitError(ExitFailure, fmt.Sprintf("%d stored document(s) do not match their id", len(mismatches)))
			}

			if formatter.Structured() {
				return formatter.Success(result)
			}
			fmt.Fprintf(formatter.Writer, "%s %d document(s) verified\n", okMark(), result.Checked)
			return nil
		},
	}
}

func outputRecords(formatter *OutputFormatter, records []store.Record) error {
	if formatter.Structured() {
		return formatter.Success(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, dim("no distributions stored"))
		return nil
	}
	t := newTable(formatter.Writer, "SEQ", "ID", "PACKAGE", "VERSION", "MODULES", "SOURCE")
	for _, r := range records {
		t.addRow(fmt.Sprint(r.Seq), shortID(r.ID), r.Package, fmt.Sprint(int(r.FormatVersion)), fmt.Sprint(r.Modules), r.Source)
	}
	t.render()
	return nil
}

// shortID abbreviates a content id for tables.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// background returns ctx, or a background context when cobra has none.
func background(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
