package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func TestWalk_PreOrder(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	var kinds []Kind
	var members []string
	err := Walk(d, func(n Node) error {
		if n.Depth <= 1 {
			kinds = append(kinds, n.Kind)
			members = append(members, n.Module.String()+"/"+n.Member.String())
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		KindModule,
		KindTypeDefinition, KindTypeDefinition, KindTypeDefinition,
		KindTypeDefinition, KindTypeDefinition, KindTypeDefinition,
		KindValueDefinition, KindValueDefinition, KindValueDefinition, KindValueDefinition,
		KindModule,
		KindValueDefinition,
	}, kinds)
	assert.Equal(t, "finance.rates/", members[0])
	assert.Equal(t, "finance.rates/rate", members[1])
	assert.Equal(t, "finance.rates/value-in-usd", members[7])
	assert.Equal(t, "util/identity", members[12])
}

func TestWalk_SkipChildren(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	count := 0
	err := Walk(d, func(n Node) error {
		count++
		if n.Kind == KindModule {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWalk_StopsOnError(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)
	stop := errors.New("stop")

	var seen []Kind
	err := Walk(d, func(n Node) error {
		seen = append(seen, n.Kind)
		if n.Kind == KindValue {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, KindValue, seen[len(seen)-1])
	assert.NotContains(t, seen[:len(seen)-1], KindValue)
}

func TestWalk_MemberPropagates(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	err := Walk(d, func(n Node) error {
		if n.Kind == KindValue {
			assert.False(t, n.Member.IsEmpty(), "value node without member in %s", n.Module)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWalk_DeepTreeIsIterative(t *testing.T) {
	const depth = 100_000

	var body Value = ir.UnitValue[ir.Attributes, ir.Attributes]{}
	for range depth {
		body = ir.ListValue[ir.Attributes, ir.Attributes]{Elements: []Value{body}}
	}
	lib := ir.Library{
		Package: ir.MustParsePath("Deep"),
		Definition: ir.PackageDefinition[ir.Attributes, ir.Attributes]{
			Modules: ir.MustEntries(ir.E(ir.MustParsePath("M"), ir.NewPublic(Module{
				Values: ir.MustEntries(ir.E(ir.MustParseName("v"), ir.NewPublic(ir.NewDocumented("", ValueDefinition{
					OutputType: ir.UnitType[ir.Attributes]{},
					Body:       body,
				})))),
			}))),
		},
	}

	s := Stats(lib)
	assert.Equal(t, depth+1, s.ValueNodes)
	assert.Equal(t, depth+2, s.MaxDepth)
}
