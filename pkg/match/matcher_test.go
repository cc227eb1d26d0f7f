package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/hollow-labs/burrow/pkg/types"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newMatcher(t *testing.T, needle string) *Matcher {
	t.Helper()
	m, err := New(needle, DefaultEncodings)
	require.NoError(t, err)
	return m
}

func encodeEUCJP(t *testing.T, s string) []byte {
	t.Helper()
	b, err := japanese.EUCJP.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func encodeShiftJIS(t *testing.T, s string) []byte {
	t.Helper()
	b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestMatchName(t *testing.T) {
	m := newMatcher(t, "secret")

	assert.True(t, m.MatchName(types.NewSemanticPath("root", "secret.txt")))
	// The whole semantic path counts: an ancestor archive's name matching
	// is a match for the file too.
	assert.True(t, m.MatchName(types.NewSemanticPath("root", "secrets.zip", "data.bin")))
	assert.False(t, m.MatchName(types.NewSemanticPath("root", "notes.txt")))
}

func TestMatchText(t *testing.T) {
	m := newMatcher(t, "xyz42")

	assert.True(t, m.MatchText(writeFile(t, []byte("the password is xyz42\n"))))
	assert.False(t, m.MatchText(writeFile(t, []byte("nothing here\n"))))
}

func TestMatchTextInvalidEncodingIsNoMatch(t *testing.T) {
	m := newMatcher(t, "xyz42")

	// Invalid UTF-8 means "not a text match", never an error.
	assert.False(t, m.MatchText(writeFile(t, []byte{0xff, 0xfe, 'x', 'y', 'z', '4', '2'})))
	// NUL bytes mark binary content.
	assert.False(t, m.MatchText(writeFile(t, []byte("xyz42\x00more"))))
}

func TestMatchTextMissingFile(t *testing.T) {
	m := newMatcher(t, "xyz42")
	assert.False(t, m.MatchText(filepath.Join(t.TempDir(), "missing")))
}

func TestMatchBinaryUTF8(t *testing.T) {
	m := newMatcher(t, "xyz42")

	blob := append([]byte{0x00, 0x01}, []byte("xyz42")...)
	enc, ok := m.MatchBinary(writeFile(t, blob))
	require.True(t, ok)
	assert.Equal(t, "UTF-8", enc)
}

func TestMatchBinaryJapaneseEncodings(t *testing.T) {
	const needle = "パスワード"
	m := newMatcher(t, needle)

	tests := []struct {
		name string
		blob []byte
		want string
	}{
		{"euc-jp", append([]byte{0x00}, encodeEUCJP(t, needle)...), "EUC-JP"},
		{"shift-jis", append([]byte{0x00}, encodeShiftJIS(t, needle)...), "Shift-JIS"},
		{"utf-8", append([]byte{0x00}, []byte(needle)...), "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, ok := m.MatchBinary(writeFile(t, tt.blob))
			require.True(t, ok)
			assert.Equal(t, tt.want, enc)
		})
	}
}

func TestMatchBinaryPriorityOrder(t *testing.T) {
	const needle = "パスワード"
	m := newMatcher(t, needle)

	// Content satisfying several encodings reports the earliest in
	// priority order.
	blob := append(encodeShiftJIS(t, needle), encodeEUCJP(t, needle)...)
	blob = append(blob, []byte(needle)...)

	enc, ok := m.MatchBinary(writeFile(t, blob))
	require.True(t, ok)
	assert.Equal(t, "UTF-8", enc)
}

func TestMatchBinaryNoMatch(t *testing.T) {
	m := newMatcher(t, "xyz42")

	_, ok := m.MatchBinary(writeFile(t, []byte{0x00, 0x01, 0x02}))
	assert.False(t, ok)
}

func TestMatchBinaryMissingFile(t *testing.T) {
	m := newMatcher(t, "xyz42")
	_, ok := m.MatchBinary(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, ok)
}

func TestNewCollapsesDuplicateByteForms(t *testing.T) {
	// A pure ASCII needle encodes identically under every configured
	// encoding; the match must report the highest-priority name.
	m := newMatcher(t, "ascii")

	enc, ok := m.MatchBinary(writeFile(t, append([]byte{0x00}, []byte("ascii")...)))
	require.True(t, ok)
	assert.Equal(t, "UTF-8", enc)
	assert.Len(t, m.encodings, 1)
}

func TestNewUnknownEncoding(t *testing.T) {
	_, err := New("x", []string{"KOI8-R"})
	assert.Error(t, err)
}
