package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/morphir-ir/internal/ir"
)

// UnsupportedVersionError is returned when formatVersion is missing or not
// one of ir.SupportedFormatVersions.
type UnsupportedVersionError struct {
	// Found describes the formatVersion field as read from the document.
	Found string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported format version: found %s, supported %v", e.Found, ir.SupportedFormatVersions)
}

// MalformedNodeError reports a structural mismatch in the document.
type MalformedNodeError struct {
	// Path is the breadcrumb of node names from the document root.
	Path     []string
	Expected string
	Found    string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed node at %s: expected %s, found %s", e.Breadcrumb(), e.Expected, e.Found)
}

// Breadcrumb renders Path as "distribution/packageDefinition/modules[a.b]/access".
func (e *MalformedNodeError) Breadcrumb() string {
	if len(e.Path) == 0 {
		return "<root>"
	}
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// IsUnsupportedVersion reports whether err is or wraps an UnsupportedVersionError.
func IsUnsupportedVersion(err error) bool {
	var target *UnsupportedVersionError
	return errors.As(err, &target)
}

// IsMalformed reports whether err is or wraps a MalformedNodeError.
func IsMalformed(err error) bool {
	var target *MalformedNodeError
	return errors.As(err, &target)
}
