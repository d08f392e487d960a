package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection holding a concept index.
type DB struct {
	db *sql.DB
}

// Metadata keys recorded when an index is built.
const (
	metaSourcePath  = "source_path"
	metaSourceMTime = "source_mtime"
	metaBuiltAt     = "built_at"
)

// ErrIndexEmpty is returned when querying an index that was never built.
var ErrIndexEmpty = errors.New("concept index is empty")

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	// Create schema if needed
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- One row per concept; ord preserves the source file's enumeration order
		CREATE TABLE IF NOT EXISTS concepts (
			name TEXT PRIMARY KEY,
			parent TEXT,
			description TEXT,
			ord INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_concepts_parent ON concepts(parent);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_concepts_ord ON concepts(ord);

		-- Build provenance for staleness detection
		CREATE TABLE IF NOT EXISTS index_metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// IndexInfo describes the source an index was built from.
type IndexInfo struct {
	SourcePath  string    `json:"source_path"`
	SourceMTime time.Time `json:"source_mtime"`
	BuiltAt     time.Time `json:"built_at"`
}

// Info returns the build provenance of the index.
// Returns ErrIndexEmpty if the index has never been built.
func (d *DB) Info() (*IndexInfo, error) {
	rows, err := d.db.Query(`SELECT key, value FROM index_metadata`)
	if err != nil {
		return nil, fmt.Errorf("querying index metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if meta[metaSourcePath] == "" {
		return nil, ErrIndexEmpty
	}

	info := &IndexInfo{SourcePath: meta[metaSourcePath]}
	if info.SourceMTime, err = parseUnixNano(meta[metaSourceMTime]); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", metaSourceMTime, err)
	}
	if info.BuiltAt, err = parseUnixNano(meta[metaBuiltAt]); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", metaBuiltAt, err)
	}
	return info, nil
}

// IsStale reports whether the source file changed since the index was built.
func (d *DB) IsStale(sourcePath string) (bool, error) {
	info, err := d.Info()
	if err != nil {
		return false, err
	}
	st, err := os.Stat(sourcePath)
	if err != nil {
		return false, fmt.Errorf("checking source: %w", err)
	}
	return !st.ModTime().Equal(info.SourceMTime), nil
}

func writeMetadata(tx *sql.Tx, sourcePath string, sourceMTime time.Time) error {
	stmt, err := tx.Prepare(`INSERT INTO index_metadata (key, value) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing metadata insert: %w", err)
	}
	defer stmt.Close()

	entries := [][2]string{
		{metaSourcePath, sourcePath},
		{metaSourceMTime, strconv.FormatInt(sourceMTime.UnixNano(), 10)},
		{metaBuiltAt, strconv.FormatInt(time.Now().UnixNano(), 10)},
	}
	for _, e := range entries {
		if _, err := stmt.Exec(e[0], e[1]); err != nil {
			return fmt.Errorf("inserting metadata %s: %w", e[0], err)
		}
	}
	return nil
}

func parseUnixNano(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, n), nil
}

// nullableStringFromGo converts a Go string to sql.NullString.
func nullableStringFromGo(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
