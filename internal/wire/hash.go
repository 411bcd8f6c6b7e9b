package wire

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainDistribution = "morphir-ir/distribution/v1"
	DomainModule       = "morphir-ir/module/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Hash computes the content hash of v under domain.
func Hash(domain string, v Value) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", domain, err)
	}
	return hashWithDomain(domain, canonical), nil
}

// ContentID computes the identity of a whole IR document.
// Equal documents get equal IDs regardless of key order or whitespace.
func ContentID(doc Value) (string, error) {
	return Hash(DomainDistribution, doc)
}

// MustContentID is like ContentID but panics on error.
// Use only in tests or when the document is known to be valid.
func MustContentID(doc Value) string {
	id, err := ContentID(doc)
	if err != nil {
		panic(err)
	}
	return id
}
