package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_PreservesInsertionOrder(t *testing.T) {
	e := MustEntries(
		E(MustParseName("zeta"), 1),
		E(MustParseName("alpha"), 2),
		E(MustParseName("mid"), 3),
	)

	var keys []string
	for k := range e.All() {
		keys = append(keys, k.String())
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
	assert.Equal(t, 3, e.Len())
}

func TestEntries_LookupByCanonicalKey(t *testing.T) {
	e := MustEntries(E(NameFromSegments("value", "in", "usd"), "v"))

	got, ok := e.Get(MustParseName("ValueInUsd"))
	require.True(t, ok)
	assert.Equal(t, "v", got)

	got, ok = e.Lookup("value-in-usd")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = e.Get(MustParseName("other"))
	assert.False(t, ok)
}

func TestEntries_RejectsDuplicates(t *testing.T) {
	_, err := NewEntries(
		E(MustParseName("fooBar"), 1),
		E(MustParseName("foo_bar"), 2),
	)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "foo-bar", dupErr.Key)
}

func TestEntries_EmptyEqualsZero(t *testing.T) {
	built, err := NewEntries[Name, int]()
	require.NoError(t, err)
	assert.Equal(t, Entries[Name, int]{}, built)

	_, ok := built.Get(MustParseName("x"))
	assert.False(t, ok)
}

func TestEntries_ItemsIsCopy(t *testing.T) {
	e := MustEntries(E(MustParseName("a"), 1))
	items := e.Items()
	items[0].Value = 99

	got, _ := e.Get(MustParseName("a"))
	assert.Equal(t, 1, got)
}

func TestAttributes(t *testing.T) {
	a, err := NewAttributes([]byte(`{ "type" : [ "Unit", {} ] }`))
	require.NoError(t, err)
	assert.Equal(t, `{"type":["Unit",{}]}`, a.String())

	empty, err := NewAttributes([]byte(` { } `))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, Attributes{}, empty)
	assert.Equal(t, "{}", string(empty.JSON()))

	_, err = NewAttributes([]byte(`{`))
	assert.Error(t, err)
}

func TestAccess(t *testing.T) {
	for _, a := range []Access{Public, Private} {
		parsed, err := ParseAccess(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err := ParseAccess("public")
	assert.Error(t, err)

	v, ok := NewPublic(5).WithPublicAccess()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = NewPrivate(5).WithPublicAccess()
	assert.False(t, ok)
}

func TestVisitDistribution(t *testing.T) {
	lib := Library{Package: MustParsePath("My.Pkg")}

	got := VisitDistribution[string](lib, DistributionFunc[string](func(l Library) string {
		return l.Package.Title()
	}))
	assert.Equal(t, "My.Pkg", got)
	assert.True(t, lib.PackageName().Equal(MustParsePath("my.pkg")))
}
