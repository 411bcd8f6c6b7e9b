package codec

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// formats holds one entry per supported wire version.
var formats = map[ir.FormatVersion]format{
	ir.FormatV2: newV2Format(),
	ir.FormatV3: newV3Format(),
}

// Document is a decoded IR document together with the version it was read as.
type Document struct {
	FormatVersion ir.FormatVersion
	Distribution  ir.Distribution
}

// Decode reads a document of any supported version.
func Decode(doc wire.Value, opts ...Option) (ir.Distribution, error) {
	decoded, err := DecodeDocument(doc, opts...)
	if err != nil {
		return nil, err
	}
	return decoded.Distribution, nil
}

// DecodeDocument is Decode that also reports the version it dispatched on.
func DecodeDocument(doc wire.Value, opts ...Option) (Document, error) {
	version, err := DetectVersion(doc)
	if err != nil {
		return Document{}, err
	}
	f := formats[version]

	d := newDecoder(buildOptions(opts))
	// Top-level keys besides formatVersion and distribution, such as
	// "$schema", are ignored.
	obj, err := d.openObject(doc, "document", "distribution")
	if err != nil {
		return Document{}, err
	}
	dist, err := at(d, "distribution", obj["distribution"], f.decodeDistribution)
	if err != nil {
		return Document{}, err
	}
	return Document{FormatVersion: version, Distribution: dist}, nil
}

// DecodeBytes parses and decodes a JSON document. Invalid JSON fails with
// a *wire.SyntaxError.
func DecodeBytes(data []byte, opts ...Option) (Document, error) {
	doc, err := wire.Parse(data)
	if err != nil {
		return Document{}, err
	}
	return DecodeDocument(doc, opts...)
}

// DetectVersion reads the top-level formatVersion field.
func DetectVersion(doc wire.Value) (ir.FormatVersion, error) {
	obj, ok := doc.(wire.Object)
	if !ok {
		return 0, &MalformedNodeError{Expected: "document object", Found: describe(doc)}
	}
	raw, ok := obj["formatVersion"]
	if !ok {
		return 0, &UnsupportedVersionError{Found: "missing"}
	}
	n, ok := raw.(wire.Number)
	if !ok {
		return 0, &UnsupportedVersionError{Found: describe(raw)}
	}
	i, err := n.Int64()
	if err != nil {
		return 0, &UnsupportedVersionError{Found: describe(raw)}
	}
	version := ir.FormatVersion(i)
	if _, ok := formats[version]; !ok {
		return 0, &UnsupportedVersionError{Found: string(n)}
	}
	return version, nil
}

// Encode writes dist in the current format version.
func Encode(dist ir.Distribution) wire.Value {
	return encodeWith(formats[ir.CurrentFormatVersion], dist)
}

// EncodeVersion writes dist in the given format version. It fails only when
// the version is not supported.
func EncodeVersion(dist ir.Distribution, version ir.FormatVersion) (wire.Value, error) {
	f, ok := formats[version]
	if !ok {
		return nil, &UnsupportedVersionError{Found: fmt.Sprintf("%d", version)}
	}
	return encodeWith(f, dist), nil
}

// EncodeBytes writes dist as compact JSON in the given format version.
func EncodeBytes(dist ir.Distribution, version ir.FormatVersion) ([]byte, error) {
	doc, err := EncodeVersion(dist, version)
	if err != nil {
		return nil, err
	}
	return wire.Marshal(doc)
}

func encodeWith(f format, dist ir.Distribution) wire.Value {
	return wire.Object{
		"formatVersion": wire.Int(int64(f.version())),
		"distribution":  f.encodeDistribution(dist),
	}
}

// DecodeType reads a single type node with a caller-supplied attribute codec.
func DecodeType[A any](v wire.Value, attr AttrCodec[A], opts ...Option) (ir.Type[A], error) {
	d := newDecoder(buildOptions(opts))
	return typeCodec[A]{attr: attr}.decode(d, v)
}

// EncodeType writes a single type node.
func EncodeType[A any](t ir.Type[A], attr AttrCodec[A]) wire.Value {
	return typeCodec[A]{attr: attr}.encode(t)
}

// DecodeValue reads a single value node of the given version. Value nodes
// are written the same way in every supported version.
func DecodeValue[TA, VA any](version ir.FormatVersion, v wire.Value, ta AttrCodec[TA], va AttrCodec[VA], opts ...Option) (ir.Value[TA, VA], error) {
	if _, ok := formats[version]; !ok {
		return nil, &UnsupportedVersionError{Found: fmt.Sprintf("%d", version)}
	}
	d := newDecoder(buildOptions(opts))
	return newValueCodec(ta, va).decode(d, v)
}

// EncodeValue writes a single value node in the given version.
func EncodeValue[TA, VA any](version ir.FormatVersion, val ir.Value[TA, VA], ta AttrCodec[TA], va AttrCodec[VA]) (wire.Value, error) {
	if _, ok := formats[version]; !ok {
		return nil, &UnsupportedVersionError{Found: fmt.Sprintf("%d", version)}
	}
	return newValueCodec(ta, va).encode(val), nil
}

func unknownVariant(kind string, v any) string {
	return fmt.Sprintf("unknown %s variant %T", kind, v)
}
