package cli

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

// putFixture stores a fixture in db and returns its record.
func putFixture(t *testing.T, dir, db, fixture string, extra ...string) map[string]any {
	t.Helper()
	path := writeFixture(t, dir, fixture)
	args := append([]string{"store", "put", "--db", db, "--format", "json", path}, extra...)
	stdout, _, code := execute(t, args...)
	require.Equal(t, ExitSuccess, code, stdout)
	data := dataOf(t, stdout)
	return data["record"].(map[string]any)
}

func TestStore_Put(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "reg", "ir.db")
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "store", "put", "--db", db, path)

	require.Equal(t, ExitSuccess, code, stdout)
	assert.Contains(t, stdout, "Stored")
	assert.Contains(t, stdout, "package my.org, format version 3, 2 module(s)")
	assert.FileExists(t, db)

	stdout, _, code = execute(t, "store", "put", "--db", db, path)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Already stored")
}

func TestStore_PutJSON(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")

	rec := putFixture(t, dir, db, testutil.LibraryV2, "--version", "2", "--source", "upstream")

	assert.Equal(t, "my.org", rec["package"])
	assert.Equal(t, float64(2), rec["formatVersion"])
	assert.Equal(t, "upstream", rec["source"])
	assert.Equal(t, float64(2), rec["modules"])
	assert.Len(t, rec["id"], 64)
}

func TestStore_PutUsesConfiguredPath(t *testing.T) {
	dir := workdir(t)
	path := writeFixture(t, dir, testutil.LibraryV3)

	_, _, code := execute(t, "store", "put", path)

	require.Equal(t, ExitSuccess, code)
	assert.FileExists(t, filepath.Join(dir, ".morphir", "ir.db"))

	stdout, _, code := execute(t, "store", "list", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	assert.Len(t, jsonResponse(t, stdout)["data"], 1)
}

func TestStore_PutInvalidDocument(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	path := writeFile(t, dir, "bad.json", `{"formatVersion": 9, "distribution": []}`)

	stdout, _, code := execute(t, "store", "put", "--db", db, "--format", "json", path)

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, ErrCodeVersion, errorOf(t, stdout)["code"])
	assert.NoFileExists(t, db)
}

func TestStore_PutUnsupportedTarget(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	path := writeFixture(t, dir, testutil.LibraryV3)

	stdout, _, code := execute(t, "store", "put", "--db", db, "--version", "5", "--format", "json", path)

	assert.Equal(t, ExitCommandError, code)
	assert.Equal(t, ErrCodeVersion, errorOf(t, stdout)["code"])
}

func TestStore_MissingDatabase(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "none.db")

	for _, args := range [][]string{
		{"store", "list", "--db", db},
		{"store", "get", "--db", db, "abc"},
		{"store", "verify", "--db", db},
	} {
		stdout, _, code := execute(t, args...)

		assert.Equal(t, ExitCommandError, code)
		assert.Contains(t, stdout, "store not found")
	}
	assert.NoFileExists(t, db)
}

func TestStore_ListText(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV3, "--source", "upstream")

	stdout, _, code := execute(t, "store", "list", "--db", db)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "SEQ")
	assert.Contains(t, stdout, rec["id"].(string)[:12])
	assert.Contains(t, stdout, "my.org")
	assert.Contains(t, stdout, "upstream")
}

func TestStore_List(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	first := putFixture(t, dir, db, testutil.LibraryV3)
	second := putFixture(t, dir, db, testutil.LibraryV2, "--version", "2")

	stdout, _, code := execute(t, "store", "list", "--db", db, "--format", "json")

	require.Equal(t, ExitSuccess, code)
	records := jsonResponse(t, stdout)["data"].([]any)
	require.Len(t, records, 2)
	assert.Equal(t, first["id"], records[0].(map[string]any)["id"])
	assert.Equal(t, second["id"], records[1].(map[string]any)["id"])
}

func TestStore_Get(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV3)

	stdout, _, code := execute(t, "store", "get", "--db", db, rec["id"].(string))

	require.Equal(t, ExitSuccess, code)
	doc, err := codec.DecodeBytes([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV3, doc.FormatVersion)
	assert.Equal(t, "my.org", doc.Distribution.PackageName().String())
}

func TestStore_GetToFile(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV2, "--version", "2")
	out := filepath.Join(dir, "out.json")

	stdout, _, code := execute(t, "store", "get", "--db", db, "-o", out, rec["id"].(string))

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Wrote")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc, err := codec.DecodeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
}

func TestStore_GetLatest(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	putFixture(t, dir, db, testutil.LibraryV3)
	putFixture(t, dir, db, testutil.LibraryV2, "--version", "2")

	stdout, _, code := execute(t, "store", "get", "--db", db, "--latest", "My.Org")

	require.Equal(t, ExitSuccess, code)
	doc, err := codec.DecodeBytes([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, ir.FormatV2, doc.FormatVersion)
}

func TestStore_GetNotFound(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	putFixture(t, dir, db, testutil.LibraryV3)

	tests := [][]string{
		{"store", "get", "--db", db, "--format", "json", "0000"},
		{"store", "get", "--db", db, "--format", "json", "--latest", "other.pkg"},
		{"store", "imports", "--db", db, "--format", "json", "0000"},
	}
	for _, args := range tests {
		stdout, _, code := execute(t, args...)

		assert.Equal(t, ExitFailure, code)
		assert.Equal(t, ErrCodeNotFound, errorOf(t, stdout)["code"])
	}
}

func TestStore_Find(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV3)

	stdout, _, code := execute(t, "store", "find", "--db", db, "--format", "json", "Finance.Rates")

	require.Equal(t, ExitSuccess, code)
	modules := jsonResponse(t, stdout)["data"].([]any)
	require.Len(t, modules, 1)
	m := modules[0].(map[string]any)
	assert.Equal(t, rec["id"], m["distributionId"])
	assert.Equal(t, "finance.rates", m["path"])
	assert.Equal(t, "Public", m["access"])
	assert.Equal(t, "Interest rate helpers.", m["doc"])

	stdout, _, code = execute(t, "store", "find", "--db", db, "--format", "json", "taxes")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, ErrCodeNotFound, errorOf(t, stdout)["code"])
}

func TestStore_ImportsAndDependents(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV3)

	stdout, _, code := execute(t, "store", "imports", "--db", db, "--format", "json", rec["id"].(string))

	require.Equal(t, ExitSuccess, code)
	assert.Len(t, jsonResponse(t, stdout)["data"], 3)

	stdout, _, code = execute(t, "store", "dependents", "--db", db, "--format", "json", "Morphir.SDK")

	require.Equal(t, ExitSuccess, code)
	records := jsonResponse(t, stdout)["data"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, rec["id"], records[0].(map[string]any)["id"])

	stdout, _, code = execute(t, "store", "dependents", "--db", db, "other.pkg")

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "no distributions stored")
}

func TestStore_Verify(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	putFixture(t, dir, db, testutil.LibraryV3)
	putFixture(t, dir, db, testutil.LibraryV2, "--version", "2")

	stdout, _, code := execute(t, "store", "verify", "--db", db)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "2 document(s) verified")
}

func TestStore_VerifyDetectsTampering(t *testing.T) {
	dir := workdir(t)
	db := filepath.Join(dir, "ir.db")
	rec := putFixture(t, dir, db, testutil.LibraryV3)

	conn, err := sql.Open("sqlite3", db)
	require.NoError(t, err)
	_, err = conn.Exec(`UPDATE distributions SET document = replace(document, '"my"', '"your"')`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	stdout, _, code := execute(t, "store", "verify", "--db", db, "--format", "json")

	assert.Equal(t, ExitFailure, code)
	resp := jsonResponse(t, stdout)
	assert.Equal(t, ErrCodeMismatch, resp["error"].(map[string]any)["code"])
	mismatches := resp["data"].(map[string]any)["mismatches"].([]any)
	require.Len(t, mismatches, 1)
	assert.Equal(t, rec["id"], mismatches[0].(map[string]any)["id"])
}
