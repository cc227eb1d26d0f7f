// Package store persists match records for later reporting.
package store

import (
	"fmt"

	"github.com/hollow-labs/burrow/pkg/types"
)

// Store persists the match records of a run. The interface abstracts the
// backing implementation so callers can swap SQLite for an in-memory store
// in tests.
type Store interface {
	// AddRecord appends one match record.
	AddRecord(r types.MatchRecord) error

	// Records returns all stored records in insertion order.
	Records() ([]types.MatchRecord, error)

	// Close closes the store.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path. Use ":memory:" for an in-memory
	// store (useful for testing).
	Path string
}

// New creates a Store. ":memory:" paths get the in-memory implementation,
// anything else SQLite.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}
