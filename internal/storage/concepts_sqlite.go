package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/ontology"
)

// RebuildFromOntology clears the concepts table and refills it from o.
// sourcePath is recorded so later runs can detect a stale index; it may be
// empty when the ontology did not come from a file, in which case the index
// has no provenance and Info returns ErrIndexEmpty.
func (d *DB) RebuildFromOntology(o *ontology.Ontology, sourcePath string) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear existing data
	if _, err := tx.Exec("DELETE FROM concepts"); err != nil {
		return 0, fmt.Errorf("clearing concepts table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM index_metadata"); err != nil {
		return 0, fmt.Errorf("clearing index metadata: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO concepts (name, parent, description, ord)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing concepts insert: %w", err)
	}
	defer stmt.Close()

	concepts := o.Concepts()
	for i, c := range concepts {
		_, err := stmt.Exec(c.Name, nullableStringFromGo(c.Parent), nullableStringFromGo(c.Description), i)
		if err != nil {
			return 0, fmt.Errorf("inserting concept %s: %w", c.Name, err)
		}
	}

	if sourcePath != "" {
		st, err := os.Stat(sourcePath)
		if err != nil {
			return 0, fmt.Errorf("checking source: %w", err)
		}
		if err := writeMetadata(tx, sourcePath, st.ModTime()); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(concepts), nil
}

// CountConcepts returns the total number of indexed concepts.
func (d *DB) CountConcepts() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM concepts").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting concepts: %w", err)
	}
	return count, nil
}

// Concept looks up a concept by name.
// Returns an error wrapping concept.ErrConceptNotFound if the name is unknown.
func (d *DB) Concept(name string) (*concept.Concept, error) {
	row := d.db.QueryRow(`
		SELECT name, parent, description
		FROM concepts
		WHERE name = ?
	`, name)

	c, err := scanConcept(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", concept.ErrConceptNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying concept %s: %w", name, err)
	}
	return c, nil
}

// AllConcepts returns every concept name in source order.
func (d *DB) AllConcepts() ([]string, error) {
	rows, err := d.db.Query(`SELECT name FROM concepts ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("querying concepts: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrIndexEmpty
	}
	return names, nil
}

// pathToTopQuery walks parent links from a concept up to the root.
const pathToTopQuery = `
	WITH RECURSIVE path(name, parent, description, depth) AS (
		SELECT name, parent, description, 0 FROM concepts WHERE name = ?
		UNION ALL
		SELECT c.name, c.parent, c.description, p.depth + 1
		FROM concepts c JOIN path p ON c.name = p.parent
	)
	SELECT name, parent, description FROM path ORDER BY depth
`

// PathToTop returns c followed by its ancestors, ending at the root.
func (d *DB) PathToTop(c *concept.Concept) ([]*concept.Concept, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: <nil>", concept.ErrConceptNotFound)
	}
	rows, err := d.db.Query(pathToTopQuery, c.Name)
	if err != nil {
		return nil, fmt.Errorf("querying path of %s: %w", c.Name, err)
	}
	defer rows.Close()

	path, err := scanConcepts(rows)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %s", concept.ErrConceptNotFound, c.Name)
	}
	return path, nil
}

// Subsumes reports whether a is an ancestor of, or equal to, b.
func (d *DB) Subsumes(a, b *concept.Concept) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: <nil>", concept.ErrConceptNotFound)
	}
	var n int
	err := d.db.QueryRow(`
		WITH RECURSIVE ancestors(name, parent) AS (
			SELECT name, parent FROM concepts WHERE name = ?
			UNION ALL
			SELECT c.name, c.parent
			FROM concepts c JOIN ancestors a ON c.name = a.parent
		)
		SELECT COUNT(*) FROM ancestors WHERE name = ?
	`, b.Name, a.Name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking %s subsumes %s: %w", a.Name, b.Name, err)
	}
	return n > 0, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanConcept scans a single concept from a row.
func scanConcept(s scanner) (*concept.Concept, error) {
	var c concept.Concept
	var parent, description sql.NullString
	if err := s.Scan(&c.Name, &parent, &description); err != nil {
		return nil, err
	}
	c.Parent = parent.String
	c.Description = description.String
	return &c, nil
}

// scanConcepts scans multiple concepts from rows.
func scanConcepts(rows *sql.Rows) ([]*concept.Concept, error) {
	var concepts []*concept.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}
