// Package schema checks the envelope of an IR document against an
// embedded CUE schema for its format version.
//
// The envelope is everything above the tree nodes: the document object,
// the Library tuple, module and entry wrappers, access tags and doc
// fields. Errors carry line and column positions in the source document,
// which the codec's breadcrumbs do not. Tree nodes are left to the codec.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
)

//go:embed envelope.cue
var envelopeSchema []byte

// definitions maps a format version to its root definition in envelope.cue.
var definitions = map[ir.FormatVersion]string{
	ir.FormatV2: "#V2",
	ir.FormatV3: "#V3",
}

// Issue is one schema violation.
type Issue struct {
	// Path is the dotted CUE path of the offending field, for example
	// "distribution.3.modules.0.1.access".
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// Error lists every violation found in a document.
type Error struct {
	Filename string
	Issues   []Issue
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d schema violation(s)", e.Filename, len(e.Issues))
	for _, is := range e.Issues {
		b.WriteString("\n  ")
		if is.Line > 0 {
			fmt.Fprintf(&b, "%d:%d: ", is.Line, is.Column)
		}
		b.WriteString(is.Message)
	}
	return b.String()
}

// Validator holds a compiled schema. A Validator is not safe for
// concurrent use; create one per goroutine.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New compiles the embedded schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(envelopeSchema, cue.Filename("envelope.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}
	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks data, a JSON document, against the schema for its
// declared format version. It returns a *codec.UnsupportedVersionError
// when the version is missing or unknown, and an *Error for violations.
func (v *Validator) Validate(data []byte, filename string) error {
	if filename == "" {
		filename = "<input>"
	}

	doc := v.ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return toError(err, filename)
	}

	version, err := detectVersion(doc)
	if err != nil {
		return err
	}

	root := v.schema.LookupPath(cue.ParsePath(definitions[version]))
	if err := root.Err(); err != nil {
		return fmt.Errorf("internal error: schema definition %s not found: %w", definitions[version], err)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toError(err, filename)
	}
	return nil
}

func detectVersion(doc cue.Value) (ir.FormatVersion, error) {
	field := doc.LookupPath(cue.ParsePath("formatVersion"))
	if !field.Exists() {
		return 0, &codec.UnsupportedVersionError{Found: "missing"}
	}
	n, err := field.Int64()
	if err != nil {
		return 0, &codec.UnsupportedVersionError{Found: fmt.Sprint(field)}
	}
	version := ir.FormatVersion(n)
	if _, ok := definitions[version]; !ok {
		return 0, &codec.UnsupportedVersionError{Found: fmt.Sprint(n)}
	}
	return version, nil
}

// toError flattens a CUE error list, keeping the first position of each
// error that falls inside the validated document.
func toError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	out := &Error{Filename: filename}
	for _, e := range errs {
		is := Issue{
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		}
		for _, pos := range cueerrors.Positions(e) {
			if pos.Filename() == filename {
				is.Line, is.Column = pos.Line(), pos.Column()
				break
			}
		}
		out.Issues = append(out.Issues, is)
	}
	return out
}
