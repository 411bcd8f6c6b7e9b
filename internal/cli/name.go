package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/ir"
)

// NameResult holds the renderings of one parsed name.
type NameResult struct {
	Input    string   `json:"input" yaml:"input"`
	Segments []string `json:"segments" yaml:"segments"`
	Kebab    string   `json:"kebab" yaml:"kebab"`
	Title    string   `json:"title" yaml:"title"`
	Camel    string   `json:"camel" yaml:"camel"`
	Snake    string   `json:"snake" yaml:"snake"`
	Human    string   `json:"human" yaml:"human"`
}

// PathResult holds the renderings of one parsed path.
type PathResult struct {
	Input     string   `json:"input" yaml:"input"`
	Names     []string `json:"names" yaml:"names"`
	Canonical string   `json:"canonical" yaml:"canonical"`
	Title     string   `json:"title" yaml:"title"`
}

// NameOptions holds flags for the name command.
type NameOptions struct {
	*RootOptions
	Path bool
}

// NewNameCommand creates the name command.
func NewNameCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NameOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "name <text>...",
		Short: "Show how names are segmented and rendered",
		Long: `Parse each argument as a Morphir name and print its segments and
renderings. Names that differ only in casing or separators are the same
name: "valueInUSD", "value_in_u_s_d" and "Value In USD" all agree.

With --path, arguments are parsed as dotted module paths.

Examples:
  morphir-ir name valueInUSD
  morphir-ir name --path Morphir.SDK.Basics`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runName(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Path, "path", false, "parse arguments as module paths")

	return cmd
}

func runName(opts *NameOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Path {
		results := make([]PathResult, 0, len(args))
		for _, arg := range args {
			p, err := ir.ParsePath(arg)
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidName, err.Error(), nil)
			}
			results = append(results, pathResult(arg, p))
		}
		if formatter.Structured() {
			return formatter.Success(results)
		}
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(formatter.Writer)
			}
			kv := newKeyValues(formatter.Writer)
			kv.add("Input", r.Input)
			kv.add("Names", strings.Join(r.Names, " / "))
			kv.add("Canonical", r.Canonical)
			kv.add("Title", r.Title)
			kv.render()
		}
		return nil
	}

	results := make([]NameResult, 0, len(args))
	for _, arg := range args {
		n, err := ir.ParseName(arg)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidName, err.Error(), nil)
		}
		results = append(results, nameResult(arg, n))
	}
	if formatter.Structured() {
		return formatter.Success(results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(formatter.Writer)
		}
		kv := newKeyValues(formatter.Writer)
		kv.add("Input", r.Input)
		kv.add("Segments", strings.Join(r.Segments, " "))
		kv.add("Kebab", r.Kebab)
		kv.add("Title", r.Title)
		kv.add("Camel", r.Camel)
		kv.add("Snake", r.Snake)
		kv.add("Human", r.Human)
		kv.render()
	}
	return nil
}

func nameResult(input string, n ir.Name) NameResult {
	return NameResult{
		Input:    input,
		Segments: n.Segments(),
		Kebab:    n.Kebab(),
		Title:    n.Title(),
		Camel:    n.Camel(),
		Snake:    n.Snake(),
		Human:    strings.Join(n.HumanWords(), " "),
	}
}

func pathResult(input string, p ir.Path) PathResult {
	names := make([]string, 0, p.Len())
	for _, n := range p.Names() {
		names = append(names, n.Kebab())
	}
	return PathResult{
		Input:     input,
		Names:     names,
		Canonical: p.String(),
		Title:     p.Title(),
	}
}
