package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hollow-labs/burrow/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    kind          TEXT NOT NULL,
    semantic_path TEXT NOT NULL,
    real_path     TEXT NOT NULL,
    encoding      TEXT NOT NULL DEFAULT '',
    created_at    TEXT NOT NULL
);
`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed store at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddRecord appends one match record.
func (s *SQLiteStore) AddRecord(r types.MatchRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO matches (kind, semantic_path, real_path, encoding, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		string(r.Kind),
		r.SemanticPath.String(),
		r.RealPath,
		r.Encoding,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}
	return nil
}

// Records returns all stored records in insertion order.
func (s *SQLiteStore) Records() ([]types.MatchRecord, error) {
	rows, err := s.db.Query(`
		SELECT kind, semantic_path, real_path, encoding
		FROM matches ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var records []types.MatchRecord
	for rows.Next() {
		var kind, semPath, realPath, enc string
		if err := rows.Scan(&kind, &semPath, &realPath, &enc); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		records = append(records, types.MatchRecord{
			Kind:         types.MatchKind(kind),
			SemanticPath: types.ParseSemanticPath(semPath),
			RealPath:     realPath,
			Encoding:     enc,
		})
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
