package testutil

import "fmt"

// SequentialIDGenerator returns predictable IDs for store tests:
// "import-0001", "import-0002", ...
//
// Thread-safety: NOT safe for concurrent use.
type SequentialIDGenerator struct {
	prefix string
	n      int
}

// NewSequentialIDGenerator creates a generator. An empty prefix defaults to "import".
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = "import"
	}
	return &SequentialIDGenerator{prefix: prefix}
}

// NewID returns the next ID.
//
// Implements store.IDGenerator.
func (g *SequentialIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
