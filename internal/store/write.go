package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/query"
)

// Put stores d encoded in the given format version, together with its
// module and import index rows. source names where the document came
// from and is informational only.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: storing content that is
// already present returns the existing record and created=false.
func (s *Store) Put(ctx context.Context, d ir.Distribution, version ir.FormatVersion, source string) (rec Record, created bool, err error) {
	enc, err := encodeDocument(d, version)
	if err != nil {
		return Record{}, false, fmt.Errorf("put: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("put: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO distributions
		(id, import_id, package, format_version, source, document)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		enc.id,
		s.ids.NewID(),
		d.PackageName().String(),
		int(version),
		source,
		enc.text,
	)
	if err != nil {
		return Record{}, false, fmt.Errorf("put: insert distribution: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return Record{}, false, fmt.Errorf("put: rows affected: %w", err)
	}

	if rowsAffected > 0 {
		if err := writeModules(ctx, tx, enc, d); err != nil {
			return Record{}, false, fmt.Errorf("put: %w", err)
		}
		if err := writeImports(ctx, tx, enc.id, d); err != nil {
			return Record{}, false, fmt.Errorf("put: %w", err)
		}
		created = true
	}

	if err := tx.Commit(); err != nil {
		return Record{}, false, fmt.Errorf("put: commit: %w", err)
	}

	rec, err = s.Record(ctx, enc.id)
	if err != nil {
		return Record{}, false, fmt.Errorf("put: %w", err)
	}

	s.logger.Debug("stored distribution",
		zap.String("id", rec.ID),
		zap.String("package", rec.Package),
		zap.Int("format_version", int(rec.FormatVersion)),
		zap.Bool("created", created),
	)
	return rec, created, nil
}

func writeModules(ctx context.Context, tx *sql.Tx, enc encodedDocument, d ir.Distribution) error {
	i := 0
	for path, m := range query.Modules(d).All() {
		var doc any
		if m.Value.Doc != nil {
			doc = *m.Value.Doc
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO modules
			(distribution_id, path, access, doc, type_count, value_count, hash)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			enc.id,
			path.String(),
			m.Access.String(),
			doc,
			m.Value.Types.Len(),
			m.Value.Values.Len(),
			enc.moduleHashes[i],
		)
		if err != nil {
			return fmt.Errorf("insert module %s: %w", path, err)
		}
		i++
	}
	return nil
}

func writeImports(ctx context.Context, tx *sql.Tx, id string, d ir.Distribution) error {
	for _, imp := range query.Imports(d) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO imports
			(distribution_id, module, package, target)
			VALUES (?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`,
			id,
			imp.From.String(),
			imp.Package.String(),
			imp.Module.String(),
		)
		if err != nil {
			return fmt.Errorf("insert import %s -> %s: %w", imp.From, imp.Module, err)
		}
	}
	return nil
}
