package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/query"
)

// ModuleSummary describes one module of a package definition.
type ModuleSummary struct {
	Name   string `json:"name" yaml:"name"`
	Access string `json:"access" yaml:"access"`
	Doc    string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Types  int    `json:"types" yaml:"types"`
	Values int    `json:"values" yaml:"values"`
}

// ImportSummary is one module-to-module dependency.
type ImportSummary struct {
	From   string `json:"from" yaml:"from"`
	Target string `json:"target" yaml:"target"`
}

// InspectResult holds inspect output.
type InspectResult struct {
	File          string          `json:"file" yaml:"file"`
	FormatVersion int             `json:"formatVersion" yaml:"formatVersion"`
	Package       string          `json:"package" yaml:"package"`
	Dependencies  []string        `json:"dependencies" yaml:"dependencies"`
	Modules       []ModuleSummary `json:"modules" yaml:"modules"`
	Imports       []ImportSummary `json:"imports,omitempty" yaml:"imports,omitempty"`
	Stats         query.Summary   `json:"stats" yaml:"stats"`
}

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Imports bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the contents of an IR document",
		Long: `Summarize a Morphir IR document: its package, dependencies, modules
and node counts by kind.

Examples:
  morphir-ir inspect morphir-ir.json
  morphir-ir inspect morphir-ir.json --imports --format yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Imports, "imports", false, "list module-to-module imports")

	return cmd
}

func runInspect(opts *InspectOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	loaded, err := opts.load(cmd, path)
	if err != nil {
		return loadFailure(formatter, err)
	}
	result := inspect(loaded, opts.Imports)

	if formatter.Structured() {
		return formatter.Success(result)
	}
	outputInspectText(formatter, result)
	return nil
}

func inspect(loaded *LoadResult, withImports bool) InspectResult {
	d := loaded.Distribution()
	result := InspectResult{
		File:          loaded.Path,
		FormatVersion: int(loaded.Document.FormatVersion),
		Package:       d.PackageName().Title(),
		Dependencies:  []string{},
		Modules:       []ModuleSummary{},
		Stats:         query.Stats(d),
	}
	for _, dep := range query.DependencyNames(d) {
		result.Dependencies = append(result.Dependencies, dep.Title())
	}
	for path, m := range query.Modules(d).All() {
		result.Modules = append(result.Modules, moduleSummary(path, m))
	}
	if withImports {
		result.Imports = []ImportSummary{}
		for _, imp := range query.Imports(d) {
			result.Imports = append(result.Imports, ImportSummary{
				From:   imp.From.Title(),
				Target: imp.Package.Title() + ":" + imp.Module.Title(),
			})
		}
	}
	return result
}

func moduleSummary(path ir.Path, m ir.AccessControlled[query.Module]) ModuleSummary {
	s := ModuleSummary{
		Name:   path.Title(),
		Access: m.Access.String(),
		Types:  m.Value.Types.Len(),
		Values: m.Value.Values.Len(),
	}
	if m.Value.Doc != nil {
		s.Doc = *m.Value.Doc
	}
	return s
}

func outputInspectText(formatter *OutputFormatter, r InspectResult) {
	w := formatter.Writer

	kv := newKeyValues(w)
	kv.add("Package", r.Package)
	kv.add("Format version", r.FormatVersion)
	deps := "none"
	if len(r.Dependencies) > 0 {
		deps = strings.Join(r.Dependencies, ", ")
	}
	kv.add("Dependencies", deps)
	kv.add("Nodes", fmt.Sprintf("%d types, %d patterns, %d values (max depth %d)",
		r.Stats.TypeNodes, r.Stats.PatternNodes, r.Stats.ValueNodes, r.Stats.MaxDepth))
	kv.render()
	fmt.Fprintln(w)

	t := newTable(w, "MODULE", "ACCESS", "TYPES", "VALUES", "DOC")
	for _, m := range r.Modules {
		t.addRow(m.Name, m.Access, fmt.Sprint(m.Types), fmt.Sprint(m.Values), m.Doc)
	}
	t.render()

	if r.Imports != nil {
		fmt.Fprintln(w)
		it := newTable(w, "MODULE", "IMPORTS")
		for _, imp := range r.Imports {
			it.addRow(imp.From, imp.Target)
		}
		it.render()
	}

	if formatter.Verbose {
		fmt.Fprintln(w)
		tags := slices.Sorted(maps.Keys(r.Stats.Tags))
		tt := newTable(w, "TAG", "COUNT")
		for _, tag := range tags {
			tt.addRow(tag, fmt.Sprint(r.Stats.Tags[tag]))
		}
		tt.render()
	}
}
