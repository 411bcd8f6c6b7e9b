package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/wire"
)

// Mismatch reports a stored document that no longer matches its id.
type Mismatch struct {
	ID     string `json:"id" yaml:"id"`
	Reason string `json:"reason" yaml:"reason"`
}

// Verify replays every stored document through the codec and recomputes
// its content id. A document that fails to decode, or re-encodes to a
// different id, is reported as a Mismatch. An intact store returns an
// empty slice.
func (s *Store) Verify(ctx context.Context) ([]Mismatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, format_version, document FROM distributions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	defer rows.Close()

	type stored struct {
		id      string
		version int
		text    string
	}
	var docs []stored
	for rows.Next() {
		var d stored
		if err := rows.Scan(&d.id, &d.version, &d.text); err != nil {
			return nil, fmt.Errorf("verify: scan: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("verify: iterate: %w", err)
	}

	mismatches := []Mismatch{}
	for _, d := range docs {
		if reason := verifyDocument(d.id, d.text); reason != "" {
			s.logger.Warn("stored document mismatch", zap.String("id", d.id), zap.String("reason", reason))
			mismatches = append(mismatches, Mismatch{ID: d.id, Reason: reason})
		}
	}
	return mismatches, nil
}

func verifyDocument(id, text string) string {
	decoded, err := codec.DecodeBytes([]byte(text))
	if err != nil {
		return err.Error()
	}
	doc, err := codec.EncodeVersion(decoded.Distribution, decoded.FormatVersion)
	if err != nil {
		return err.Error()
	}
	got, err := wire.ContentID(doc)
	if err != nil {
		return err.Error()
	}
	if got != id {
		return fmt.Sprintf("content id is %s", got)
	}
	return ""
}
