// Package match decides whether a search string appears in a file's name,
// its text content, or its raw bytes under a set of text encodings.
package match

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/hollow-labs/burrow/pkg/types"
)

// DefaultEncodings is the binary-match encoding priority order. When a file's
// bytes contain the needle under more than one encoding, the earliest listed
// wins.
var DefaultEncodings = []string{"UTF-8", "EUC-JP", "Shift-JIS"}

// encoders maps encoding names to their x/text encodings. UTF-8 is absent:
// the needle's Go string bytes already are UTF-8.
var encoders = map[string]encoding.Encoding{
	"EUC-JP":    japanese.EUCJP,
	"Shift-JIS": japanese.ShiftJIS,
}

// Matcher holds the needle and its encoded byte forms. The binary check runs
// all forms in a single Aho-Corasick pass over the file content.
type Matcher struct {
	needle    string
	encodings []string // encoding name per pattern index, priority ordered
	ac        *ahocorasick.Matcher
}

// New builds a Matcher for needle under the given encodings, priority
// ordered. Encodings that cannot represent the needle are skipped; encodings
// whose byte form duplicates an earlier one (pure ASCII needles encode
// identically everywhere) collapse into the earlier, higher-priority entry.
func New(needle string, encodingNames []string) (*Matcher, error) {
	m := &Matcher{needle: needle}

	var patterns [][]byte
	seen := make(map[string]bool)
	for _, name := range encodingNames {
		var encoded []byte
		if enc, ok := encoders[name]; ok {
			b, err := enc.NewEncoder().Bytes([]byte(needle))
			if err != nil {
				continue // needle not representable in this encoding
			}
			encoded = b
		} else if name == "UTF-8" {
			encoded = []byte(needle)
		} else {
			return nil, fmt.Errorf("unknown encoding: %s", name)
		}

		if seen[string(encoded)] {
			continue
		}
		seen[string(encoded)] = true
		m.encodings = append(m.encodings, name)
		patterns = append(patterns, encoded)
	}

	if len(patterns) > 0 {
		m.ac = ahocorasick.NewMatcher(patterns)
	}
	return m, nil
}

// Needle returns the search string.
func (m *Matcher) Needle() string {
	return m.needle
}

// MatchName reports whether the stringified semantic path contains the
// needle. The whole path is checked, not just the final segment, so a file
// matches when any ancestor archive's name contains the needle.
func (m *Matcher) MatchName(p types.SemanticPath) bool {
	return p.Contains(m.needle)
}

// MatchText reports whether the file at path is valid text containing the
// needle. Content that does not decode as text is a non-match, never an
// error, as are unreadable files.
func (m *Matcher) MatchText(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if !isText(data) {
		return false
	}
	return bytes.Contains(data, []byte(m.needle))
}

// MatchBinary reports the highest-priority encoding whose byte form of the
// needle occurs in the file's raw content, or false if none does.
func (m *Matcher) MatchBinary(path string) (string, bool) {
	if m.ac == nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	best := -1
	for _, hit := range m.ac.Match(data) {
		if best == -1 || hit < best {
			best = hit
		}
	}
	if best == -1 {
		return "", false
	}
	return m.encodings[best], true
}

// isText mirrors the usual text/binary sniff: no NUL bytes and valid UTF-8.
func isText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if bytes.IndexByte(data, 0x00) != -1 {
		return false
	}
	return utf8.Valid(data)
}
