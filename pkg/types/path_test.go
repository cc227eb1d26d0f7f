package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticPathJoin(t *testing.T) {
	root := NewSemanticPath("root")
	child := root.Join("outer.zip").Join("inner.tar")

	assert.Equal(t, "root", root.String())
	assert.Equal(t, "root/outer.zip/inner.tar", child.String())
	assert.Equal(t, 3, child.Depth())
}

func TestSemanticPathJoinDoesNotAliasSiblings(t *testing.T) {
	// Sibling branches derived from the same parent must not share a
	// backing array.
	parent := NewSemanticPath("root", "a")
	left := parent.Join("left")
	right := parent.Join("right")

	assert.Equal(t, "root/a/left", left.String())
	assert.Equal(t, "root/a/right", right.String())
	assert.Equal(t, "root/a", parent.String())
}

func TestSemanticPathContains(t *testing.T) {
	p := NewSemanticPath("root", "secrets.zip", "data.bin")

	// A match can come from an ancestor archive's name.
	assert.True(t, p.Contains("secrets"))
	assert.True(t, p.Contains("data.bin"))
	// Or from the joined form itself.
	assert.True(t, p.Contains("secrets.zip/data"))
	assert.False(t, p.Contains("missing"))
}

func TestSemanticPathJSONRoundTrip(t *testing.T) {
	p := NewSemanticPath("root", "outer.zip", "hit.txt")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"root/outer.zip/hit.txt"`, string(data))

	var back SemanticPath
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p.String(), back.String())
}

func TestMatchRecordJSON(t *testing.T) {
	r := MatchRecord{
		Kind:         KindBinary,
		SemanticPath: NewSemanticPath("root", "blob.bin"),
		RealPath:     "/tmp/root/blob.bin",
		Encoding:     "EUC-JP",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "binary-content",
		"semantic_path": "root/blob.bin",
		"real_path": "/tmp/root/blob.bin",
		"encoding": "EUC-JP"
	}`, string(data))
}

func TestMatchRecordJSONOmitsEmptyEncoding(t *testing.T) {
	r := MatchRecord{
		Kind:         KindFilename,
		SemanticPath: NewSemanticPath("root", "hit.txt"),
		RealPath:     "/tmp/root/hit.txt",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "encoding")
}
