package ir

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// segmentPattern matches one name segment: a run of digits, or a letter
// followed by lowercase letters. Everything else is a separator.
var segmentPattern = regexp.MustCompile(`[a-zA-Z][a-z]*|[0-9]+`)

// EmptyNameError is returned when an identifier contains no segments.
type EmptyNameError struct {
	Input string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("name %q contains no alphanumeric segments", e.Input)
}

// Name is an ordered sequence of lower-case word segments.
// The zero value is an empty name and only appears in uninitialized structs.
type Name struct {
	segments []string
}

// ParseName tokenizes an identifier into a Name.
//
//	ParseName("valueInUSD")     // value-in-u-s-d
//	ParseName("fooBar_baz 123") // foo-bar-baz-123
func ParseName(s string) (Name, error) {
	matches := segmentPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return Name{}, &EmptyNameError{Input: s}
	}
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return Name{segments: matches}, nil
}

// MustParseName is like ParseName but panics on error.
// Use only in tests or with literal identifiers.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NameFromSegments builds a Name from already-tokenized segments.
// Segments are kept verbatim so decoded names re-encode byte for byte.
func NameFromSegments(segments ...string) Name {
	if len(segments) == 0 {
		return Name{}
	}
	return Name{segments: append([]string(nil), segments...)}
}

// Segments returns a copy of the name's segments.
func (n Name) Segments() []string {
	return append([]string(nil), n.segments...)
}

// Len returns the number of segments.
func (n Name) Len() int {
	return len(n.segments)
}

// IsEmpty reports whether the name has no segments.
func (n Name) IsEmpty() bool {
	return len(n.segments) == 0
}

// Equal reports whether both names have the same canonical form.
func (n Name) Equal(other Name) bool {
	return n.String() == other.String()
}

// String returns the canonical kebab-case form.
func (n Name) String() string {
	return n.Kebab()
}

// Kebab joins lower-cased segments with "-".
func (n Name) Kebab() string {
	lowered := make([]string, len(n.segments))
	for i, s := range n.segments {
		lowered[i] = strings.ToLower(s)
	}
	return strings.Join(lowered, "-")
}

// Title capitalizes every segment and concatenates them: ValueInUSD.
func (n Name) Title() string {
	var b strings.Builder
	for _, s := range n.segments {
		b.WriteString(capitalize(s))
	}
	return b.String()
}

// Camel is Title with the first segment left lower-case: valueInUSD.
func (n Name) Camel() string {
	if len(n.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(n.segments[0]))
	for _, s := range n.segments[1:] {
		b.WriteString(capitalize(s))
	}
	return b.String()
}

// Snake joins human words with "_": value_in_USD.
func (n Name) Snake() string {
	return strings.Join(n.HumanWords(), "_")
}

// HumanWords returns the segments with runs of single-letter segments
// collapsed into one upper-case abbreviation.
//
//	["value","in","u","s","d"] -> ["value","in","USD"]
func (n Name) HumanWords() []string {
	var words []string
	var abbrev strings.Builder
	flush := func() {
		if abbrev.Len() > 0 {
			words = append(words, abbrev.String())
			abbrev.Reset()
		}
	}
	for _, s := range n.segments {
		if len([]rune(s)) == 1 && !isDigits(s) {
			abbrev.WriteString(strings.ToUpper(s))
			continue
		}
		flush()
		words = append(words, s)
	}
	flush()
	return words
}

func capitalize(s string) string {
	// Casers hold state and must not be shared across goroutines.
	return cases.Title(language.Und).String(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
