package ir

import "fmt"

// Access is the visibility tag of an AccessControlled value.
type Access int

const (
	Public Access = iota
	Private
)

// String returns the wire tag: "Public" or "Private".
func (a Access) String() string {
	switch a {
	case Public:
		return "Public"
	case Private:
		return "Private"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// ParseAccess parses a wire tag.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "Public":
		return Public, nil
	case "Private":
		return Private, nil
	default:
		return 0, fmt.Errorf("unknown access %q", s)
	}
}

// AccessControlled wraps a value with its visibility.
type AccessControlled[T any] struct {
	Access Access
	Value  T
}

// NewPublic wraps v as public.
func NewPublic[T any](v T) AccessControlled[T] {
	return AccessControlled[T]{Access: Public, Value: v}
}

// NewPrivate wraps v as private.
func NewPrivate[T any](v T) AccessControlled[T] {
	return AccessControlled[T]{Access: Private, Value: v}
}

// WithPublicAccess returns the value only when it is public.
func (ac AccessControlled[T]) WithPublicAccess() (T, bool) {
	if ac.Access == Public {
		return ac.Value, true
	}
	var zero T
	return zero, false
}

// Documented pairs a value with its doc string. An empty Doc means the
// value is undocumented.
type Documented[T any] struct {
	Doc   string
	Value T
}

// NewDocumented wraps v with doc.
func NewDocumented[T any](doc string, v T) Documented[T] {
	return Documented[T]{Doc: doc, Value: v}
}
