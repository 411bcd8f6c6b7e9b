package ir

import (
	"fmt"
	"regexp"
	"strings"
)

// pathSeparator splits a dotted or slashed module string into its names.
var pathSeparator = regexp.MustCompile(`[^\w\s]+`)

// Path is an ordered, non-empty sequence of Names locating a package or
// module. Two paths are equal iff their names are equal element-wise.
type Path struct {
	names []Name
}

// ParsePath parses "Morphir.SDK.Basics" or "morphir/sdk/basics" into a Path.
// Parts that yield no name segments are skipped; a string with no parts at
// all fails with EmptyNameError.
func ParsePath(s string) (Path, error) {
	var names []Name
	for _, part := range pathSeparator.Split(s, -1) {
		n, err := ParseName(part)
		if err != nil {
			continue
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return Path{}, &EmptyNameError{Input: s}
	}
	return Path{names: names}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PathFromNames builds a Path from names.
func PathFromNames(names ...Name) Path {
	if len(names) == 0 {
		return Path{}
	}
	return Path{names: append([]Name(nil), names...)}
}

// Names returns a copy of the path's names.
func (p Path) Names() []Name {
	return append([]Name(nil), p.names...)
}

// Len returns the number of names in the path.
func (p Path) Len() int {
	return len(p.names)
}

// IsEmpty reports whether the path has no names.
func (p Path) IsEmpty() bool {
	return len(p.names) == 0
}

// Equal compares element-wise by canonical name.
func (p Path) Equal(other Path) bool {
	if len(p.names) != len(other.names) {
		return false
	}
	for i := range p.names {
		if !p.names[i].Equal(other.names[i]) {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether p is a (non-strict) prefix of other.
func (p Path) IsPrefixOf(other Path) bool {
	if len(p.names) > len(other.names) {
		return false
	}
	for i := range p.names {
		if !p.names[i].Equal(other.names[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical form: kebab-case names joined with ".".
func (p Path) String() string {
	return p.Render(Name.Kebab, ".")
}

// Title renders each name in title case joined with ".": Morphir.SDK.Basics.
// Single-letter runs are kept as abbreviations.
func (p Path) Title() string {
	return p.Render(func(n Name) string { return strings.Join(titleWords(n), "") }, ".")
}

// Render formats every name with f and joins the results with sep.
func (p Path) Render(f func(Name) string, sep string) string {
	parts := make([]string, len(p.names))
	for i, n := range p.names {
		parts[i] = f(n)
	}
	return strings.Join(parts, sep)
}

func titleWords(n Name) []string {
	words := n.HumanWords()
	for i, w := range words {
		words[i] = capitalize(w)
		if strings.ToUpper(w) == w {
			words[i] = w
		}
	}
	return words
}

// QName is a module-qualified local name.
type QName struct {
	Module Path
	Local  Name
}

// String renders "Module.Path:localName".
func (q QName) String() string {
	return q.Module.Title() + ":" + q.Local.Camel()
}

// FQName is a fully-qualified name: package, module and local name.
type FQName struct {
	Package Path
	Module  Path
	Local   Name
}

// NewFQName builds an FQName from its three parts.
func NewFQName(pkg, mod Path, local Name) FQName {
	return FQName{Package: pkg, Module: mod, Local: local}
}

// ParseFQName parses "Package.Path:Module.Path:localName".
func ParseFQName(s string) (FQName, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return FQName{}, fmt.Errorf("fqname %q: expected 3 colon-separated parts, got %d", s, len(parts))
	}
	pkg, err := ParsePath(parts[0])
	if err != nil {
		return FQName{}, fmt.Errorf("fqname %q package: %w", s, err)
	}
	mod, err := ParsePath(parts[1])
	if err != nil {
		return FQName{}, fmt.Errorf("fqname %q module: %w", s, err)
	}
	local, err := ParseName(parts[2])
	if err != nil {
		return FQName{}, fmt.Errorf("fqname %q local name: %w", s, err)
	}
	return FQName{Package: pkg, Module: mod, Local: local}, nil
}

// MustParseFQName is like ParseFQName but panics on error.
func MustParseFQName(s string) FQName {
	fq, err := ParseFQName(s)
	if err != nil {
		panic(err)
	}
	return fq
}

// Equal compares all three parts canonically.
func (f FQName) Equal(other FQName) bool {
	return f.Package.Equal(other.Package) && f.Module.Equal(other.Module) && f.Local.Equal(other.Local)
}

// QName drops the package part.
func (f FQName) QName() QName {
	return QName{Module: f.Module, Local: f.Local}
}

// String renders "Package.Path:Module.Path:localName".
func (f FQName) String() string {
	return f.Package.Title() + ":" + f.Module.Title() + ":" + f.Local.Camel()
}
