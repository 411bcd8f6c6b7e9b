package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/query"
)

// MemberSummary is one type or value of a module.
type MemberSummary struct {
	Name      string `json:"name" yaml:"name"`
	Access    string `json:"access,omitempty" yaml:"access,omitempty"`
	Doc       string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// ModuleDetail holds query module output.
type ModuleDetail struct {
	Name string `json:"name" yaml:"name"`
	// Package is set when the module comes from a dependency.
	Package string          `json:"package,omitempty" yaml:"package,omitempty"`
	Access  string          `json:"access,omitempty" yaml:"access,omitempty"`
	Doc     string          `json:"doc,omitempty" yaml:"doc,omitempty"`
	Types   []MemberSummary `json:"types" yaml:"types"`
	Values  []MemberSummary `json:"values" yaml:"values"`
}

// TypeDetail holds query type output.
type TypeDetail struct {
	Module       string   `json:"module" yaml:"module"`
	Name         string   `json:"name" yaml:"name"`
	Access       string   `json:"access" yaml:"access"`
	Doc          string   `json:"doc,omitempty" yaml:"doc,omitempty"`
	Kind         string   `json:"kind" yaml:"kind"`
	Params       []string `json:"params" yaml:"params"`
	Alias        string   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Constructors []string `json:"constructors,omitempty" yaml:"constructors,omitempty"`
}

// ValueDetail holds query value output.
type ValueDetail struct {
	Module    string `json:"module" yaml:"module"`
	Name      string `json:"name" yaml:"name"`
	Access    string `json:"access" yaml:"access"`
	Doc       string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Signature string `json:"signature" yaml:"signature"`
	Inputs    int    `json:"inputs" yaml:"inputs"`
}

// NewQueryCommand creates the query command and its subcommands.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up modules, types and values in an IR document",
		Long: `Look up modules, types and values in a Morphir IR document.

Names may be written in any casing: "Finance.Rates" and "finance.rates"
name the same module, "valueInUsd" and "value_in_usd" the same value.

Exit codes:
  0 - Found
  1 - Not found, or the document is not valid IR
  2 - Command error`,
	}

	cmd.AddCommand(newQueryModulesCommand(rootOpts))
	cmd.AddCommand(newQueryModuleCommand(rootOpts))
	cmd.AddCommand(newQueryTypeCommand(rootOpts))
	cmd.AddCommand(newQueryValueCommand(rootOpts))

	return cmd
}

func newQueryModulesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "modules <file>",
		Short:         "List the modules of the package definition",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)
			loaded, err := opts.load(cmd, args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			modules := []ModuleSummary{}
			for path, m := range query.Modules(loaded.Distribution()).All() {
				modules = append(modules, moduleSummary(path, m))
			}
			if formatter.Structured() {
				return formatter.Success(modules)
			}
			t := newTable(formatter.Writer, "MODULE", "ACCESS", "TYPES", "VALUES")
			for _, m := range modules {
				t.addRow(m.Name, m.Access, fmt.Sprint(m.Types), fmt.Sprint(m.Values))
			}
			t.render()
			return nil
		},
	}
}

func newQueryModuleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "module <file> <module>",
		Short:         "Show the types and values of a module",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)
			loaded, err := opts.load(cmd, args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			detail, ok := moduleDetail(loaded.Distribution(), args[1])
			if !ok {
				return notFound(formatter, "module", args[1])
			}
			if formatter.Structured() {
				return formatter.Success(detail)
			}
			outputModuleText(formatter, detail)
			return nil
		},
	}
}

func newQueryTypeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "type <file> <module> <type>",
		Short:         "Show a type definition",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)
			loaded, err := opts.load(cmd, args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			m, ok := query.FindModuleByName(loaded.Distribution(), args[1])
			if !ok {
				return notFound(formatter, "module", args[1])
			}
			entry, ok := query.FindTypeEntry(m, args[2])
			if !ok {
				return notFound(formatter, "type", args[1]+"."+args[2])
			}
			detail := typeDetail(args[1], args[2], entry)
			if formatter.Structured() {
				return formatter.Success(detail)
			}

			kv := newKeyValues(formatter.Writer)
			kv.add("Type", detail.Name)
			kv.add("Module", detail.Module)
			kv.add("Access", detail.Access)
			kv.add("Kind", detail.Kind)
			if len(detail.Params) > 0 {
				kv.add("Params", strings.Join(detail.Params, " "))
			}
			if detail.Alias != "" {
				kv.add("Alias of", detail.Alias)
			}
			for i, c := range detail.Constructors {
				key := ""
				if i == 0 {
					key = "Constructors"
				}
				kv.add(key, c)
			}
			if detail.Doc != "" {
				kv.add("Doc", detail.Doc)
			}
			kv.render()
			return nil
		},
	}
}

func newQueryValueCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "value <file> <module> <value>",
		Short:         "Show a value definition's signature",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)
			loaded, err := opts.load(cmd, args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			m, ok := query.FindModuleByName(loaded.Distribution(), args[1])
			if !ok {
				return notFound(formatter, "module", args[1])
			}
			entry, ok := query.FindValueEntry(m, args[2])
			if !ok {
				return notFound(formatter, "value", args[1]+"."+args[2])
			}
			detail := ValueDetail{
				Module:    titlePath(args[1]),
				Name:      camelName(args[2]),
				Access:    entry.Access.String(),
				Doc:       entry.Value.Doc,
				Signature: query.Signature(entry.Value.Value),
				Inputs:    len(entry.Value.Value.InputTypes),
			}
			if formatter.Structured() {
				return formatter.Success(detail)
			}

			kv := newKeyValues(formatter.Writer)
			kv.add("Value", detail.Name)
			kv.add("Module", detail.Module)
			kv.add("Access", detail.Access)
			kv.add("Signature", detail.Signature)
			if detail.Doc != "" {
				kv.add("Doc", detail.Doc)
			}
			kv.render()
			return nil
		},
	}
}

// moduleDetail describes a module of the package definition, falling back
// to the dependencies' module specifications.
func moduleDetail(d ir.Distribution, name string) (ModuleDetail, bool) {
	p, err := ir.ParsePath(name)
	if err != nil {
		return ModuleDetail{}, false
	}

	if m, ok := query.Modules(d).Get(p); ok {
		detail := ModuleDetail{
			Name:   p.Title(),
			Access: m.Access.String(),
			Types:  []MemberSummary{},
			Values: []MemberSummary{},
		}
		if m.Value.Doc != nil {
			detail.Doc = *m.Value.Doc
		}
		for n, t := range m.Value.Types.All() {
			detail.Types = append(detail.Types, MemberSummary{
				Name:   n.Title(),
				Access: t.Access.String(),
				Doc:    t.Value.Doc,
			})
		}
		for n, v := range m.Value.Values.All() {
			detail.Values = append(detail.Values, MemberSummary{
				Name:      n.Camel(),
				Access:    v.Access.String(),
				Doc:       v.Value.Doc,
				Signature: query.Signature(v.Value.Value),
			})
		}
		return detail, true
	}

	spec, pkg, ok := query.FindDependencyModule(d, p)
	if !ok {
		return ModuleDetail{}, false
	}
	detail := ModuleDetail{
		Name:    p.Title(),
		Package: pkg.Title(),
		Types:   []MemberSummary{},
		Values:  []MemberSummary{},
	}
	if spec.Doc != nil {
		detail.Doc = *spec.Doc
	}
	for n, t := range spec.Types.All() {
		detail.Types = append(detail.Types, MemberSummary{Name: n.Title(), Doc: t.Doc})
	}
	for n, v := range spec.Values.All() {
		detail.Values = append(detail.Values, MemberSummary{Name: n.Camel(), Doc: v.Doc, Signature: query.SpecSignature(v.Value)})
	}
	return detail, true
}

func typeDetail(module, name string, entry query.TypeEntry) TypeDetail {
	detail := TypeDetail{
		Module: titlePath(module),
		Name:   titleName(name),
		Access: entry.Access.String(),
		Doc:    entry.Value.Doc,
		Params: []string{},
	}
	var params []ir.Name
	switch def := entry.Value.Value.(type) {
	case ir.TypeAliasDefinition[ir.Attributes]:
		detail.Kind = "alias"
		detail.Alias = query.TypeString(def.Type)
		params = def.Params
	case ir.CustomTypeDefinition[ir.Attributes]:
		detail.Kind = "custom"
		params = def.Params
		if def.Constructors.Access == ir.Private {
			detail.Kind = "custom (opaque constructors)"
		}
		for n, args := range def.Constructors.Value.All() {
			detail.Constructors = append(detail.Constructors, query.ConstructorString(n, args))
		}
	}
	for _, p := range params {
		detail.Params = append(detail.Params, p.Camel())
	}
	return detail
}

func outputModuleText(formatter *OutputFormatter, d ModuleDetail) {
	w := formatter.Writer

	kv := newKeyValues(w)
	kv.add("Module", d.Name)
	if d.Package != "" {
		kv.add("Package", d.Package+" (dependency)")
	} else {
		kv.add("Access", d.Access)
	}
	if d.Doc != "" {
		kv.add("Doc", d.Doc)
	}
	kv.render()

	fmt.Fprintln(w)
	tt := newTable(w, "TYPE", "ACCESS")
	for _, t := range d.Types {
		tt.addRow(t.Name, t.Access)
	}
	tt.render()

	fmt.Fprintln(w)
	vt := newTable(w, "VALUE", "ACCESS", "SIGNATURE")
	for _, v := range d.Values {
		vt.addRow(v.Name, v.Access, v.Signature)
	}
	vt.render()
}

func notFound(formatter *OutputFormatter, kind, name string) error {
	return formatter.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("%s not found: %s", kind, name), nil)
}

func titlePath(s string) string {
	if p, err := ir.ParsePath(s); err == nil {
		return p.Title()
	}
	return s
}

func titleName(s string) string {
	if n, err := ir.ParseName(s); err == nil {
		return n.Title()
	}
	return s
}

func camelName(s string) string {
	if n, err := ir.ParseName(s); err == nil {
		return n.Camel()
	}
	return s
}
