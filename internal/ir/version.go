package ir

// FormatVersion identifies a wire-format revision of the IR document.
type FormatVersion int

const (
	// FormatV2 lets modules leave out the "doc" key.
	FormatV2 FormatVersion = 2

	// FormatV3 requires a "doc" key, string or null, on every module.
	FormatV3 FormatVersion = 3

	// CurrentFormatVersion is the version written by default.
	CurrentFormatVersion = FormatV3
)

// SupportedFormatVersions lists the versions that decode and encode accept.
var SupportedFormatVersions = []FormatVersion{FormatV2, FormatV3}

// IsSupported reports whether v can be decoded and encoded.
func (v FormatVersion) IsSupported() bool {
	for _, s := range SupportedFormatVersions {
		if v == s {
			return true
		}
	}
	return false
}
