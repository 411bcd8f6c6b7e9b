package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func TestConvert_ToVersion2(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "convert", "--to", "2", path)

	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasSuffix(stdout, "\n"))
	doc, err := codec.DecodeBytes([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
	assert.Equal(t, "my.org", doc.Distribution.PackageName().String())
	assert.Contains(t, stdout, "Interest rate helpers.")
	assert.Contains(t, stdout, "Converts an amount to USD.")
}

func TestConvert_DefaultsToConfiguredVersion(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV2)

	stdout, _, code := execute(t, "convert", "--compact", path)

	require.Equal(t, ExitSuccess, code)

	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	doc, err := codec.DecodeBytes([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV3, doc.FormatVersion)
}

func TestConvert_ConfiguredVersionFromEnv(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)
	t.Setenv("MORPHIR_IR_FORMAT_VERSION", "2")

	stdout, _, code := execute(t, "convert", path)

	require.Equal(t, ExitSuccess, code)
	doc, err := codec.DecodeBytes([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
}

func TestConvert_OutputFile(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)
	out := filepath.Join(dir, "v2.json")

	stdout, _, code := execute(t, "convert", "--to", "2", "-o", out, "--format", "json", path)

	require.Equal(t, ExitSuccess, code)
	data := dataOf(t, stdout)
	assert.Equal(t, float64(3), data["from"])
	assert.Equal(t, float64(2), data["to"])
	assert.Len(t, data["id"], 64)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	doc, err := codec.DecodeBytes(written)
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
}

func TestConvert_RoundTripKeepsContentID(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV2)
	v3 := filepath.Join(dir, "v3.json")
	back := filepath.Join(dir, "back.json")

	_, _, code := execute(t, "convert", "--to", "3", "-o", v3, path)
	require.Equal(t, ExitSuccess, code)
	_, _, code = execute(t, "convert", "--to", "2", "-o", back, v3)
	require.Equal(t, ExitSuccess, code)

	original, _, code := execute(t, "hash", path)
	require.Equal(t, ExitSuccess, code)
	roundTripped, _, code := execute(t, "hash", back)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, original, roundTripped)
}

func TestConvert_UnsupportedTarget(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "convert", "--to", "4", "--format", "json", path)

	assert.Equal(t, ExitCommandError, code)
	e := errorOf(t, stdout)
	assert.Equal(t, ErrCodeVersion, e["code"])
	assert.Contains(t, e["message"], "unsupported target format version 4")
}

func TestConvert_WriteFailure(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "convert", "-o", filepath.Join(dir, "no", "such", "dir.json"), path)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stdout, ErrCodeWriteFailed)
}
