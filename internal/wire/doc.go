// Package wire provides the structured document model the IR codec reads
// and writes.
//
// A document is a tree of sealed Value nodes (Null, String, Number, Bool,
// Array, Object) parsed from JSON bytes. Numbers keep their literal text so
// that integer and floating-point payloads survive a round trip untouched.
//
// Serialization is deterministic: object keys are emitted in RFC 8785 order
// (UTF-16 code units) and HTML characters are never escaped. MarshalCanonical
// additionally NFC-normalizes strings and is the only form used for content
// hashing.
package wire
