package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/testutil"
	"github.com/roach88/morphir-ir/internal/wire"
)

func TestHash_MatchesContentID(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "hash", path)

	require.Equal(t, ExitSuccess, code)
	doc, err := codec.DecodeBytes(testutil.Fixture(testutil.LibraryV3))
	require.NoError(t, err)
	encoded, err := codec.EncodeVersion(doc.Distribution, doc.FormatVersion)
	require.NoError(t, err)
	assert.Equal(t, wire.MustContentID(encoded)+"\n", stdout)
}

func TestHash_IgnoresFormatting(t *testing.T) {
	dir := workdir(t)
	indented := writeFixture(t, dir, testutil.LibraryV3)

	doc, err := wire.Parse(testutil.Fixture(testutil.LibraryV3))
	require.NoError(t, err)
	compact, err := wire.Marshal(doc)
	require.NoError(t, err)
	compactPath := writeFile(t, dir, "compact.json", string(compact))

	a, _, code := execute(t, "hash", indented)
	require.Equal(t, ExitSuccess, code)
	b, _, code := execute(t, "hash", compactPath)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, a, b)
}

func TestHash_VersionsDiffer(t *testing.T) {
	dir := workdir(t)
	v3 := writeFixture(t, dir, testutil.LibraryV3)
	v2 := writeFixture(t, dir, testutil.LibraryV2)

	a, _, code := execute(t, "hash", v3)
	require.Equal(t, ExitSuccess, code)
	b, _, code := execute(t, "hash", v2)
	require.Equal(t, ExitSuccess, code)
	assert.NotEqual(t, a, b)
}

func TestHash_Modules(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "hash", "--modules", "--format", "json", path)

	require.Equal(t, ExitSuccess, code)
	data := dataOf(t, stdout)
	assert.Len(t, data["id"], 64)
	modules := data["modules"].([]any)
	require.Len(t, modules, 2)
	assert.Equal(t, "Finance.Rates", modules[0].(map[string]any)["name"])
	assert.Equal(t, "Util", modules[1].(map[string]any)["name"])
	assert.Len(t, modules[0].(map[string]any)["hash"], 64)
}

func TestHash_ModulesText(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV2)

	stdout, _, code := execute(t, "hash", "--modules", path)

	require.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 64)
	assert.True(t, strings.HasSuffix(lines[1], "  Finance.Rates"))
	assert.True(t, strings.HasSuffix(lines[2], "  Util"))
}
