package ir

import "fmt"

// Distribution is the sealed top-level container of a packaged IR.
// Library is the only variant. Dispatch through VisitDistribution so that
// a new variant breaks every visitor at compile time.
type Distribution interface {
	distribution()
	PackageName() Path
}

// Library is a package definition together with the specifications of
// the packages it depends on.
type Library struct {
	Package      Path
	Dependencies Entries[Path, PackageSpecification[Attributes]]
	Definition   PackageDefinition[Attributes, Attributes]
}

func (Library) distribution() {}

// PackageName returns the library's package path.
func (l Library) PackageName() Path { return l.Package }

// DistributionVisitor has one method per Distribution variant.
type DistributionVisitor[R any] interface {
	VisitLibrary(Library) R
}

// VisitDistribution dispatches d to the matching visitor method.
func VisitDistribution[R any](d Distribution, v DistributionVisitor[R]) R {
	switch d := d.(type) {
	case Library:
		return v.VisitLibrary(d)
	default:
		// Unreachable: Distribution is sealed.
		panic(fmt.Sprintf("unknown distribution %T", d))
	}
}

// DistributionFunc adapts a function to a single-variant visitor.
type DistributionFunc[R any] func(Library) R

func (f DistributionFunc[R]) VisitLibrary(l Library) R { return f(l) }
