package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/roach88/morphir-ir/internal/ir"
)

// Reference is a fully-qualified name used from inside a module, either
// as a type reference, a value reference or a constructor.
type Reference struct {
	From   ir.Path
	Target ir.FQName
}

// Import is a module-to-module dependency derived from references.
type Import struct {
	From    ir.Path
	Package ir.Path
	Module  ir.Path
}

// External reports whether the import leaves the given package.
func (i Import) External(pkg ir.Path) bool {
	return !i.Package.Equal(pkg)
}

// References lists every distinct (module, target) pair in walk order.
func References(d ir.Distribution) []Reference {
	var refs []Reference
	seen := make(map[[2]string]bool)
	add := func(from ir.Path, target ir.FQName) {
		key := [2]string{from.String(), target.String()}
		if seen[key] {
			return
		}
		seen[key] = true
		refs = append(refs, Reference{From: from, Target: target})
	}

	// The callback never fails.
	_ = Walk(d, func(n Node) error {
		switch n.Kind {
		case KindType:
			if t, ok := n.Type.(ir.TypeReference[ir.Attributes]); ok {
				add(n.Module, t.FQName)
			}
		case KindPattern:
			if p, ok := n.Pattern.(ir.ConstructorPattern[ir.Attributes]); ok {
				add(n.Module, p.FQName)
			}
		case KindValue:
			switch v := n.Value.(type) {
			case ir.ReferenceValue[ir.Attributes, ir.Attributes]:
				add(n.Module, v.FQName)
			case ir.ConstructorValue[ir.Attributes, ir.Attributes]:
				add(n.Module, v.FQName)
			}
		}
		return nil
	})
	return refs
}

// Imports collapses References to the modules each module depends on,
// sorted by importing module and then by target. A module does not
// import itself.
func Imports(d ir.Distribution) []Import {
	pkg := d.PackageName()
	var imports []Import
	seen := make(map[[3]string]bool)
	for _, ref := range References(d) {
		if ref.Target.Package.Equal(pkg) && ref.Target.Module.Equal(ref.From) {
			continue
		}
		key := [3]string{ref.From.String(), ref.Target.Package.String(), ref.Target.Module.String()}
		if seen[key] {
			continue
		}
		seen[key] = true
		imports = append(imports, Import{From: ref.From, Package: ref.Target.Package, Module: ref.Target.Module})
	}
	slices.SortStableFunc(imports, func(a, b Import) int {
		return cmp.Or(
			strings.Compare(a.From.String(), b.From.String()),
			strings.Compare(a.Package.String(), b.Package.String()),
			strings.Compare(a.Module.String(), b.Module.String()),
		)
	})
	return imports
}
