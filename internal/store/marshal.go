package store

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// encodedDocument is a distribution ready for storage.
type encodedDocument struct {
	id   string
	text string
	// moduleHashes follows the module order of the package definition.
	moduleHashes []string
}

// encodeDocument encodes d in the given format version. The stored text is
// compact JSON with sorted keys; the id is computed over canonical JSON.
func encodeDocument(d ir.Distribution, version ir.FormatVersion) (encodedDocument, error) {
	doc, err := codec.EncodeVersion(d, version)
	if err != nil {
		return encodedDocument{}, err
	}

	id, err := wire.ContentID(doc)
	if err != nil {
		return encodedDocument{}, fmt.Errorf("content id: %w", err)
	}

	text, err := wire.Marshal(doc)
	if err != nil {
		return encodedDocument{}, fmt.Errorf("marshal document: %w", err)
	}

	hashes, err := codec.ModuleHashes(doc)
	if err != nil {
		return encodedDocument{}, fmt.Errorf("module hashes: %w", err)
	}

	return encodedDocument{id: id, text: string(text), moduleHashes: hashes}, nil
}

// decodeDocument reverses encodeDocument.
func decodeDocument(text string) (ir.Distribution, error) {
	doc, err := codec.DecodeBytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	return doc.Distribution, nil
}
