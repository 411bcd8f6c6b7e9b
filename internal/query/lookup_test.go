package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func loadLibrary(t *testing.T, fixture string) ir.Distribution {
	t.Helper()
	doc, err := codec.DecodeBytes(testutil.Fixture(fixture))
	require.NoError(t, err)
	return doc.Distribution
}

func ratesModule(t *testing.T) Module {
	t.Helper()
	m, ok := FindModule(loadLibrary(t, testutil.LibraryV3), ir.MustParsePath("Finance.Rates"))
	require.True(t, ok)
	return m
}

func TestModules(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	assert.Equal(t, 2, Modules(d).Len())
	names := ModuleNames(d)
	require.Len(t, names, 2)
	assert.Equal(t, "finance.rates", names[0].String())
	assert.Equal(t, "util", names[1].String())
}

func TestFindModule(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"title case", "Finance.Rates", true},
		{"canonical", "finance.rates", true},
		{"other module", "Util", true},
		{"prefix only", "Finance", false},
		{"longer path", "Finance.Rates.Extra", false},
		{"unknown", "Nope", false},
		{"unparseable", "...", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FindModuleByName(d, tt.query)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestModuleAccessAndDoc(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	access, ok := ModuleAccess(d, ir.MustParsePath("Finance.Rates"))
	require.True(t, ok)
	assert.Equal(t, ir.Public, access)

	access, ok = ModuleAccess(d, ir.MustParsePath("Util"))
	require.True(t, ok)
	assert.Equal(t, ir.Private, access)

	doc, ok := ModuleDoc(d, ir.MustParsePath("Finance.Rates"))
	assert.True(t, ok)
	assert.Equal(t, "Interest rate helpers.", doc)

	_, ok = ModuleDoc(d, ir.MustParsePath("Util"))
	assert.False(t, ok, "null doc is absent")

	_, ok = ModuleAccess(d, ir.MustParsePath("Missing"))
	assert.False(t, ok)
}

func TestFindValue_Spellings(t *testing.T) {
	m := ratesModule(t)

	for _, spelling := range []string{"valueInUsd", "ValueInUsd", "value_in_usd", "value-in-usd"} {
		t.Run(spelling, func(t *testing.T) {
			def, ok := FindValue(m, spelling)
			require.True(t, ok)
			assert.Len(t, def.InputTypes, 1)
			assert.True(t, HasValue(m, spelling))
		})
	}
}

func TestFindType_Spellings(t *testing.T) {
	m := ratesModule(t)

	for _, spelling := range []string{"Currency", "currency"} {
		t.Run(spelling, func(t *testing.T) {
			def, ok := FindType(m, spelling)
			require.True(t, ok, spelling)
			_, isCustom := def.(ir.CustomTypeDefinition[ir.Attributes])
			assert.True(t, isCustom)
		})
	}
}

func TestLookup_Absent(t *testing.T) {
	m := ratesModule(t)

	_, ok := FindValue(m, "missing")
	assert.False(t, ok)
	_, ok = FindType(m, "Missing")
	assert.False(t, ok)
	_, ok = FindValue(m, "")
	assert.False(t, ok)

	assert.False(t, HasType(m, "valueInUsd"), "values are not types")
	assert.False(t, HasValue(m, "Currency"), "types are not values")

	_, ok = TypeAccess(m, "missing")
	assert.False(t, ok)
	_, ok = ValueDoc(m, "missing")
	assert.False(t, ok)
}

func TestLookup_Metadata(t *testing.T) {
	m := ratesModule(t)

	access, ok := TypeAccess(m, "Pair")
	require.True(t, ok)
	assert.Equal(t, ir.Private, access)

	access, ok = ValueAccess(m, "valueInUsd")
	require.True(t, ok)
	assert.Equal(t, ir.Public, access)

	doc, ok := TypeDoc(m, "Rate")
	require.True(t, ok)
	assert.Equal(t, "A rate.", doc)

	doc, ok = ValueDoc(m, "classify")
	require.True(t, ok)
	assert.Empty(t, doc)

	doc, ok = ValueDoc(m, "pi")
	require.True(t, ok)
	assert.Equal(t, "Pi to twenty places.", doc)
}

func TestLookup_RenderingFallback(t *testing.T) {
	// "rateV2" tokenizes to ["rate","v","2"], which differs from the stored
	// segments but renders the same.
	def := ValueDefinition{OutputType: ir.UnitType[ir.Attributes]{}, Body: ir.UnitValue[ir.Attributes, ir.Attributes]{}}
	m := Module{
		Values: ir.MustEntries(ir.E(ir.NameFromSegments("rate", "v2"), ir.NewPublic(ir.NewDocumented("", def)))),
	}

	assert.True(t, HasValue(m, "rateV2"))
	assert.False(t, HasValue(m, "rate"))
}

func TestFindDependencyModule(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	spec, pkg, ok := FindDependencyModule(d, ir.MustParsePath("Basics"))
	require.True(t, ok)
	assert.Equal(t, "morphir.s-d-k", pkg.String())
	assert.Equal(t, 5, spec.Types.Len())

	_, _, ok = FindDependencyModule(d, ir.MustParsePath("Finance.Rates"))
	assert.False(t, ok, "own modules are not dependencies")
}

func TestDependencyNames(t *testing.T) {
	d := loadLibrary(t, testutil.LibraryV3)

	names := DependencyNames(d)
	require.Len(t, names, 1)
	assert.Equal(t, "Morphir.SDK", names[0].Title())
}
