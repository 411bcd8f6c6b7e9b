package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSealed(t *testing.T) {
	var _ Value = Null{}
	var _ Value = String("test")
	var _ Value = Number("1.5")
	var _ Value = Bool(true)
	var _ Value = Array{String("a"), Int(1)}
	var _ Value = Object{"key": String("value")}
}

func TestObjectSortedKeysRFC8785Order(t *testing.T) {
	obj := Object{
		"a":  Int(1),
		"A":  Int(2),
		"aa": Int(3),
		"aA": Int(4),
		"Aa": Int(5),
		"AA": Int(6),
	}

	assert.Equal(t, []string{"A", "AA", "Aa", "a", "aA", "aa"}, obj.SortedKeys())
}

func TestCompareKeysRFC8785_SurrogatePairs(t *testing.T) {
	// U+1F600 encodes as D83D DE00 and sorts before U+FB01 (FB01) in UTF-16,
	// although its UTF-8 bytes sort after.
	assert.Equal(t, -1, compareKeysRFC8785("\U0001F600", "\ufb01"))
	assert.Equal(t, 1, compareKeysRFC8785("\ufb01", "\U0001F600"))
	assert.Equal(t, 0, compareKeysRFC8785("same", "same"))
	assert.Equal(t, -1, compareKeysRFC8785("ab", "abc"))
}

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`{"formatVersion": 3, "xs": [1.5, -2, "s", true, null, {}]}`))
	require.NoError(t, err)

	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, Number("3"), obj["formatVersion"])
	assert.Equal(t, Array{Number("1.5"), Number("-2"), String("s"), Bool(true), Null{}, Object{}}, obj["xs"])
}

func TestParse_KeepsNumberText(t *testing.T) {
	v, err := Parse([]byte(`[1.0, 1e3, 12345678901234567890]`))
	require.NoError(t, err)
	assert.Equal(t, Array{Number("1.0"), Number("1e3"), Number("12345678901234567890")}, v)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"truncated", `{"a": [1, 2`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"bare word", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestNumberConversions(t *testing.T) {
	n, err := Int(-42).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	_, err = Number("1.5").Int64()
	assert.Error(t, err)

	f, err := Float(0.1).Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.1, f)
	assert.Equal(t, Number("0.1"), Float(0.1))
	assert.Equal(t, Number("1e+21"), Float(1e21))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "missing", Kind(nil))
	assert.Equal(t, "null", Kind(Null{}))
	assert.Equal(t, "string", Kind(String("")))
	assert.Equal(t, "number", Kind(Int(0)))
	assert.Equal(t, "bool", Kind(Bool(false)))
	assert.Equal(t, "array", Kind(Arr()))
	assert.Equal(t, "object", Kind(Object{}))
}

func TestArr_NeverNil(t *testing.T) {
	arr := Arr()
	require.NotNil(t, arr)
	out, err := Marshal(arr)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
