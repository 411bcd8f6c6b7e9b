package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

// createTestStore creates a new store in a temporary directory with
// predictable import ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// loadFixture decodes a testutil fixture.
func loadFixture(t *testing.T, name string) ir.Distribution {
	t.Helper()
	doc, err := codec.DecodeBytes(testutil.Fixture(name))
	if err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return doc.Distribution
}

// emptyLibrary returns a library with no modules and no dependencies.
func emptyLibrary(pkg string) ir.Distribution {
	return ir.Library{Package: ir.MustParsePath(pkg)}
}
