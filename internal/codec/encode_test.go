package codec

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
	"github.com/roach88/morphir-ir/internal/wire"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEncode_Golden(t *testing.T) {
	tests := []struct {
		golden  string
		fixture string
		version ir.FormatVersion
	}{
		{"encode_v3", testutil.LibraryV3, ir.FormatV3},
		{"encode_v2", testutil.LibraryV2, ir.FormatV2},
		{"convert_v3_to_v2", testutil.LibraryV3, ir.FormatV2},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			lib := decodeFixture(t, tt.fixture)

			doc, err := EncodeVersion(lib, tt.version)
			require.NoError(t, err)
			out, err := wire.MarshalIndent(doc, "  ")
			require.NoError(t, err)

			newGoldie(t).Assert(t, tt.golden, out)
		})
	}
}

func TestEncode_FixturesRoundTrip(t *testing.T) {
	for _, fixture := range []string{testutil.LibraryV3, testutil.LibraryV2} {
		t.Run(fixture, func(t *testing.T) {
			doc := loadFixture(t, fixture)
			decoded, err := DecodeDocument(doc)
			require.NoError(t, err)

			encoded, err := EncodeVersion(decoded.Distribution, decoded.FormatVersion)
			require.NoError(t, err)
			assert.Equal(t, wire.Value(doc), encoded)

			again, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, decoded.Distribution, again)
		})
	}
}

func TestEncode_CurrentVersion(t *testing.T) {
	lib := decodeFixture(t, testutil.LibraryV2)

	doc := Encode(lib)
	version, err := DetectVersion(doc)
	require.NoError(t, err)
	assert.Equal(t, ir.CurrentFormatVersion, version)

	// Modules without a doc are written with "doc": null.
	up, err := Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, lib, up)
}

func TestEncode_ConvertToV2(t *testing.T) {
	lib := decodeFixture(t, testutil.LibraryV3)

	data, err := EncodeBytes(lib, ir.FormatV2)
	require.NoError(t, err)

	doc, err := DecodeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
	assert.Equal(t, ir.Distribution(lib), doc.Distribution)
}

func TestEncode_V2ModuleDoc(t *testing.T) {
	doc := "Rates."
	var def moduleDef
	f := newV2Format()

	assert.Equal(t, wire.MustParse(`{"types": [], "values": []}`), f.encodeModule(def))
	assert.Equal(t, wire.MustParse(`{"types": [], "values": []}`), f.encodeModuleSpec(moduleSpec{}))

	def.Doc = &doc
	assert.Equal(t, wire.MustParse(`{"doc": "Rates.", "types": [], "values": []}`), f.encodeModule(def))
	assert.Equal(t, wire.MustParse(`{"doc": "Rates.", "types": [], "values": []}`), f.encodeModuleSpec(moduleSpec{Doc: &doc}))
}

// Encoding has no depth limit of its own.
func TestEncode_DeepTree(t *testing.T) {
	const depth = 10000
	var tpe ir.Type[attrs] = ir.UnitType[attrs]{}
	for range depth {
		tpe = ir.FunctionType[attrs]{Argument: ir.UnitType[attrs]{}, Result: tpe}
	}

	encoded := EncodeType(tpe, Opaque)

	_, err := DecodeType(encoded, Opaque)
	assert.True(t, IsMalformed(err))

	back, err := DecodeType(encoded, Opaque, WithMaxDepth(2*depth))
	require.NoError(t, err)
	assert.Equal(t, tpe, back)
}

func TestEncode_UnsupportedVersion(t *testing.T) {
	lib := decodeFixture(t, testutil.LibraryV3)

	_, err := EncodeVersion(lib, 4)
	assert.True(t, IsUnsupportedVersion(err))

	_, err = EncodeBytes(lib, 1)
	assert.True(t, IsUnsupportedVersion(err))

	_, err = EncodeValue(0, ir.Value[attrs, attrs](ir.UnitValue[attrs, attrs]{}), Opaque, Opaque)
	assert.True(t, IsUnsupportedVersion(err))
}

func TestEncode_LiteralsSharedAcrossVersions(t *testing.T) {
	tests := []struct {
		lit  ir.Literal
		want string
	}{
		{ir.WholeNumberLiteral{Value: -7}, `["Literal",{},["WholeNumberLiteral",-7]]`},
		{ir.DecimalLiteral{Value: "1.50"}, `["Literal",{},["DecimalLiteral","1.50"]]`},
		{ir.FloatLiteral{Value: 0.5}, `["Literal",{},["FloatLiteral",0.5]]`},
	}

	for _, version := range ir.SupportedFormatVersions {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("v%d %s", version, tt.want), func(t *testing.T) {
				val := ir.Value[attrs, attrs](ir.LiteralValue[attrs, attrs]{Literal: tt.lit})

				v, err := EncodeValue(version, val, Opaque, Opaque)
				require.NoError(t, err)
				out, err := wire.Marshal(v)
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(out))
			})
		}
	}
}

func TestEncode_EmptyCollections(t *testing.T) {
	lib := ir.Library{Package: path("Empty")}

	out, err := EncodeBytes(lib, ir.FormatV3)
	require.NoError(t, err)
	assert.Equal(t, `{"distribution":["Library",[["empty"]],[],{"modules":[]}],"formatVersion":3}`, string(out))

	doc, err := DecodeBytes(out)
	require.NoError(t, err)
	assert.Equal(t, ir.Distribution(lib), doc.Distribution)
}
