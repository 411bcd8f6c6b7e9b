package query

import (
	"github.com/roach88/morphir-ir/internal/ir"
)

// Summary describes the size and shape of a package definition.
type Summary struct {
	Modules          int            `json:"modules" yaml:"modules"`
	Types            int            `json:"types" yaml:"types"`
	Values           int            `json:"values" yaml:"values"`
	Dependencies     int            `json:"dependencies" yaml:"dependencies"`
	TypeNodes        int            `json:"typeNodes" yaml:"typeNodes"`
	PatternNodes     int            `json:"patternNodes" yaml:"patternNodes"`
	ValueNodes       int            `json:"valueNodes" yaml:"valueNodes"`
	LetDefinitions   int            `json:"letDefinitions" yaml:"letDefinitions"`
	MaxDepth         int            `json:"maxDepth" yaml:"maxDepth"`
	PublicModules    int            `json:"publicModules" yaml:"publicModules"`
	DocumentedValues int            `json:"documentedValues" yaml:"documentedValues"`
	Tags             map[string]int `json:"tags" yaml:"tags"`
}

// Stats walks d once and counts what it finds. Tags counts tree nodes
// by wire tag, for example "Apply" or "WildcardPattern".
func Stats(d ir.Distribution) Summary {
	s := Summary{
		Dependencies: asLibrary(d).Dependencies.Len(),
		Tags:         make(map[string]int),
	}
	for _, m := range Modules(d).All() {
		if m.Access == ir.Public {
			s.PublicModules++
		}
		for _, v := range m.Value.Values.All() {
			if v.Value.Doc != "" {
				s.DocumentedValues++
			}
		}
	}

	// The callback never fails.
	_ = Walk(d, func(n Node) error {
		s.MaxDepth = max(s.MaxDepth, n.Depth)
		switch n.Kind {
		case KindModule:
			s.Modules++
		case KindTypeDefinition:
			s.Types++
		case KindValueDefinition:
			if n.Depth == 1 {
				s.Values++
			} else {
				s.LetDefinitions++
			}
		case KindType:
			s.TypeNodes++
			s.Tags[TypeTag(n.Type)]++
		case KindPattern:
			s.PatternNodes++
			s.Tags[PatternTag(n.Pattern)]++
		case KindValue:
			s.ValueNodes++
			s.Tags[ValueTag(n.Value)]++
		}
		return nil
	})
	return s
}
