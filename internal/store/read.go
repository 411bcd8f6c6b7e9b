package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/morphir-ir/internal/ir"
)

// Record describes a stored distribution without its document.
type Record struct {
	Seq           int64            `json:"seq" yaml:"seq"`
	ID            string           `json:"id" yaml:"id"`
	ImportID      string           `json:"importId" yaml:"importId"`
	Package       string           `json:"package" yaml:"package"`
	FormatVersion ir.FormatVersion `json:"formatVersion" yaml:"formatVersion"`
	Source        string           `json:"source" yaml:"source"`
	Modules       int              `json:"modules" yaml:"modules"`
}

// ModuleRecord is one row of the module index.
type ModuleRecord struct {
	DistributionID string  `json:"distributionId" yaml:"distributionId"`
	Package        string  `json:"package" yaml:"package"`
	Path           string  `json:"path" yaml:"path"`
	Access         string  `json:"access" yaml:"access"`
	Doc            *string `json:"doc" yaml:"doc"`
	Types          int     `json:"types" yaml:"types"`
	Values         int     `json:"values" yaml:"values"`
	Hash           string  `json:"hash" yaml:"hash"`
}

// ImportRecord is one module-to-module dependency of a stored distribution.
type ImportRecord struct {
	Module  string `json:"module" yaml:"module"`
	Package string `json:"package" yaml:"package"`
	Target  string `json:"target" yaml:"target"`
}

const recordColumns = `
	d.seq, d.id, d.import_id, d.package, d.format_version, d.source,
	(SELECT COUNT(*) FROM modules m WHERE m.distribution_id = d.id)
`

// Record retrieves the record of a stored distribution.
// Returns ErrNotFound if no distribution has the id.
func (s *Store) Record(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM distributions d WHERE d.id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("distribution %s: %w", id, ErrNotFound)
	}
	return rec, err
}

// Get retrieves and decodes a stored distribution.
// Returns ErrNotFound if no distribution has the id.
func (s *Store) Get(ctx context.Context, id string) (Record, ir.Distribution, error) {
	rec, err := s.Record(ctx, id)
	if err != nil {
		return Record{}, nil, err
	}

	var text string
	if err := s.db.QueryRowContext(ctx, `SELECT document FROM distributions WHERE id = ?`, id).Scan(&text); err != nil {
		return Record{}, nil, fmt.Errorf("get document: %w", err)
	}

	d, err := decodeDocument(text)
	if err != nil {
		return Record{}, nil, err
	}
	return rec, d, nil
}

// Latest returns the most recently stored distribution of a package.
// Returns ErrNotFound if the package was never stored.
func (s *Store) Latest(ctx context.Context, pkg ir.Path) (Record, ir.Distribution, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM distributions
		WHERE package = ?
		ORDER BY seq DESC
		LIMIT 1
	`, pkg.String()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil, fmt.Errorf("package %s: %w", pkg, ErrNotFound)
	}
	if err != nil {
		return Record{}, nil, fmt.Errorf("latest: %w", err)
	}
	return s.Get(ctx, id)
}

// List returns all stored distributions with deterministic ordering.
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM distributions d
		ORDER BY d.seq ASC, d.id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query distributions: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distributions: %w", err)
	}
	return records, nil
}

// FindModule returns every stored module with the given path, oldest
// distribution first.
func (s *Store) FindModule(ctx context.Context, path ir.Path) ([]ModuleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.distribution_id, d.package, m.path, m.access, m.doc, m.type_count, m.value_count, m.hash
		FROM modules m
		JOIN distributions d ON d.id = m.distribution_id
		WHERE m.path = ?
		ORDER BY d.seq ASC, m.distribution_id COLLATE BINARY ASC
	`, path.String())
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	modules := []ModuleRecord{}
	for rows.Next() {
		var m ModuleRecord
		var doc sql.NullString
		if err := rows.Scan(&m.DistributionID, &m.Package, &m.Path, &m.Access, &doc, &m.Types, &m.Values, &m.Hash); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		if doc.Valid {
			m.Doc = &doc.String
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modules: %w", err)
	}
	return modules, nil
}

// Imports returns the module dependencies recorded for a distribution.
func (s *Store) Imports(ctx context.Context, id string) ([]ImportRecord, error) {
	return s.queryImports(ctx, `
		SELECT module, package, target FROM imports
		WHERE distribution_id = ?
		ORDER BY module COLLATE BINARY ASC, package COLLATE BINARY ASC, target COLLATE BINARY ASC
	`, id)
}

// Dependents returns the stored distributions that import from pkg.
func (s *Store) Dependents(ctx context.Context, pkg ir.Path) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM distributions d
		WHERE EXISTS (SELECT 1 FROM imports i WHERE i.distribution_id = d.id AND i.package = ?)
		ORDER BY d.seq ASC, d.id COLLATE BINARY ASC
	`, pkg.String())
	if err != nil {
		return nil, fmt.Errorf("query dependents: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dependents: %w", err)
	}
	return records, nil
}

func (s *Store) queryImports(ctx context.Context, q string, args ...any) ([]ImportRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	imports := []ImportRecord{}
	for rows.Next() {
		var imp ImportRecord
		if err := rows.Scan(&imp.Module, &imp.Package, &imp.Target); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate imports: %w", err)
	}
	return imports, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var version int
	err := row.Scan(&rec.Seq, &rec.ID, &rec.ImportID, &rec.Package, &version, &rec.Source, &rec.Modules)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan distribution: %w", err)
	}
	rec.FormatVersion = ir.FormatVersion(version)
	return rec, nil
}
