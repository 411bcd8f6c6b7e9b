package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		title     string
	}{
		{"Morphir.SDK.Basics", "morphir.s-d-k.basics", "Morphir.SDK.Basics"},
		{"morphir/sdk/basics", "morphir.sdk.basics", "Morphir.Sdk.Basics"},
		{"My.Package", "my.package", "My.Package"},
		{"Foo..Bar", "foo.bar", "Foo.Bar"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, p.String())
			assert.Equal(t, tt.title, p.Title())
		})
	}
}

func TestParsePath_Empty(t *testing.T) {
	_, err := ParsePath("...")
	var emptyErr *EmptyNameError
	require.ErrorAs(t, err, &emptyErr)
}

func TestPath_Equal(t *testing.T) {
	a := MustParsePath("Morphir.SDK.Basics")
	b := PathFromNames(NameFromSegments("morphir"), NameFromSegments("s", "d", "k"), NameFromSegments("basics"))
	c := MustParsePath("Morphir.SDK")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, c.IsPrefixOf(a))
	assert.False(t, a.IsPrefixOf(c))
}

func TestFQName_RoundTripString(t *testing.T) {
	fq, err := ParseFQName("Morphir.SDK:Basics:add")
	require.NoError(t, err)

	assert.Equal(t, "morphir.s-d-k", fq.Package.String())
	assert.Equal(t, "basics", fq.Module.String())
	assert.Equal(t, "add", fq.Local.String())
	assert.Equal(t, "Morphir.SDK:Basics:add", fq.String())
	assert.Equal(t, "Basics:add", fq.QName().String())
	assert.True(t, fq.Equal(MustParseFQName(fq.String())))
}

func TestParseFQName_Errors(t *testing.T) {
	for _, input := range []string{"Morphir.SDK:Basics", "a:b:c:d", ":Basics:add", "Pkg:Mod:__"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseFQName(input)
			assert.Error(t, err)
		})
	}
}
