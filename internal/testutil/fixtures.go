package testutil

import (
	"embed"
	"fmt"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixture names. Both describe the same library (package my.org with
// modules finance.rates and util, depending on morphir.s-d-k) in the two
// supported wire formats. Every type, value and pattern node kind appears
// at least once in finance.rates.
const (
	LibraryV3 = "library_v3.json"
	LibraryV2 = "library_v2.json"
)

// Fixture returns the raw bytes of a named fixture document.
// Panics if the fixture does not exist; fixture names are compile-time constants.
func Fixture(name string) []byte {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		panic(fmt.Sprintf("fixture %q: %v", name, err))
	}
	return data
}
