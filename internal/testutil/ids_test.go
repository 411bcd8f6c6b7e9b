package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDGenerator(t *testing.T) {
	g := NewSequentialIDGenerator("")

	assert.Equal(t, "import-0001", g.NewID())
	assert.Equal(t, "import-0002", g.NewID())

	other := NewSequentialIDGenerator("run")
	assert.Equal(t, "run-0001", other.NewID())
}

func TestFixture(t *testing.T) {
	for _, name := range []string{LibraryV2, LibraryV3} {
		assert.NotEmpty(t, Fixture(name), name)
	}
	assert.Panics(t, func() { Fixture("missing.json") })
}
