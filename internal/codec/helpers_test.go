package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
	"github.com/roach88/morphir-ir/internal/wire"
)

type attrs = ir.Attributes

// loadFixture parses a fixture into a fresh, mutable document.
func loadFixture(t *testing.T, name string) wire.Object {
	t.Helper()
	doc, err := wire.Parse(testutil.Fixture(name))
	require.NoError(t, err)
	obj, ok := doc.(wire.Object)
	require.True(t, ok)
	return obj
}

func decodeFixture(t *testing.T, name string) ir.Library {
	t.Helper()
	dist, err := Decode(loadFixture(t, name))
	require.NoError(t, err)
	lib, ok := dist.(ir.Library)
	require.True(t, ok)
	return lib
}

// modulesOf digs out packageDefinition.modules of a Library document.
func modulesOf(t *testing.T, doc wire.Object) wire.Array {
	t.Helper()
	dist := doc["distribution"].(wire.Array)
	return dist[3].(wire.Object)["modules"].(wire.Array)
}

// moduleValue digs out the {"doc", "types", "values"} object of module i.
func moduleValue(t *testing.T, doc wire.Object, i int) wire.Object {
	t.Helper()
	entry := modulesOf(t, doc)[i].(wire.Array)
	return entry[1].(wire.Object)["value"].(wire.Object)
}

func name(s string) ir.Name { return ir.MustParseName(s) }
func path(s string) ir.Path { return ir.MustParsePath(s) }

func sdkFQ(module, local string) ir.FQName {
	return ir.NewFQName(path("Morphir.SDK"), path(module), name(local))
}
