// Package codec converts between wire documents and the IR tree.
//
// Decode reads the top-level formatVersion and hands the distribution
// payload to that version's decoder. Other top-level keys are ignored.
// A structural mismatch anywhere in the tree fails with a
// MalformedNodeError whose Path is the breadcrumb from the document root,
// and no partial tree is ever returned. Nesting deeper than WithMaxDepth
// (DefaultMaxDepth unless set) is a MalformedNodeError too.
//
// Encode is the left inverse of Decode for the version it targets:
//
//	d, _ := codec.Decode(doc)
//	again, _ := codec.Decode(codec.Encode(d)) // again equals d
//
// Encoding recurses once per nesting level and has no depth limit. Trees
// returned by Decode are already bounded by the decode depth.
//
// Node codecs are generic over the attribute payload (AttrCodec), so callers
// with typed annotations can reuse DecodeType / DecodeValue directly.
// Distributions carry opaque attributes (ir.Attributes) preserved verbatim.
//
// All functions are pure and safe for concurrent use on independent inputs.
package codec
