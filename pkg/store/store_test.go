package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-labs/burrow/pkg/types"
)

func sampleRecords() []types.MatchRecord {
	return []types.MatchRecord{
		{
			Kind:         types.KindFilename,
			SemanticPath: types.NewSemanticPath("root", "xyz42.txt"),
			RealPath:     "/tmp/root/xyz42.txt",
		},
		{
			Kind:         types.KindBinary,
			SemanticPath: types.NewSemanticPath("root", "outer.zip", "dump.bin"),
			RealPath:     "/tmp/scratch/dump.bin",
			Encoding:     "Shift-JIS",
		},
		{
			Kind:         types.KindText,
			SemanticPath: types.NewSemanticPath("root", "notes.txt"),
			RealPath:     "/tmp/root/notes.txt",
		},
	}
}

func testRoundTrip(t *testing.T, s Store) {
	t.Helper()
	for _, r := range sampleRecords() {
		require.NoError(t, s.AddRecord(r))
	}

	got, err := s.Records()
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := sampleRecords()
	for i := range want {
		assert.Equal(t, want[i].Kind, got[i].Kind)
		assert.Equal(t, want[i].SemanticPath.String(), got[i].SemanticPath.String())
		assert.Equal(t, want[i].RealPath, got[i].RealPath)
		assert.Equal(t, want[i].Encoding, got[i].Encoding)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burrow.db")
	s, err := New(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	testRoundTrip(t, s)
	assert.FileExists(t, path)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burrow.db")

	s, err := New(Config{Path: path})
	require.NoError(t, err)
	for _, r := range sampleRecords() {
		require.NoError(t, s.AddRecord(r))
	}
	require.NoError(t, s.Close())

	s2, err := New(Config{Path: path})
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Records()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*MemoryStore)
	assert.True(t, ok, ":memory: should select the in-memory store")
	testRoundTrip(t, s)
}

func TestNewEmptyPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
