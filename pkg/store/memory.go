package store

import (
	"sync"

	"github.com/hollow-labs/burrow/pkg/types"
)

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu      sync.Mutex
	records []types.MatchRecord
}

// NewMemory creates an in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// AddRecord appends one match record.
func (s *MemoryStore) AddRecord(r types.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

// Records returns all stored records in insertion order.
func (s *MemoryStore) Records() ([]types.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.MatchRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
