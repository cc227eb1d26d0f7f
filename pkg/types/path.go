package types

import (
	"encoding/json"
	"strings"
)

// SemanticPath is the logical location of a file, expressed as the chain of
// archive entry names crossed to reach it. Crossing into an archive appends
// the archive's entry name; the files inside then extend the path with their
// own names, even though on disk they live in an unrelated scratch directory.
//
// SemanticPath is a value type: Join returns a new path and never aliases the
// receiver's backing array, so sibling recursion branches cannot observe each
// other's segments. It is used for reporting only, never for I/O.
type SemanticPath struct {
	segments []string
}

// NewSemanticPath creates a path from the given segments.
func NewSemanticPath(segments ...string) SemanticPath {
	s := make([]string, len(segments))
	copy(s, segments)
	return SemanticPath{segments: s}
}

// ParseSemanticPath reconstructs a path from its String form.
func ParseSemanticPath(s string) SemanticPath {
	if s == "" {
		return SemanticPath{}
	}
	return SemanticPath{segments: strings.Split(s, "/")}
}

// Join returns a new path with segment appended. The receiver is unchanged.
func (p SemanticPath) Join(segment string) SemanticPath {
	s := make([]string, len(p.segments)+1)
	copy(s, p.segments)
	s[len(p.segments)] = segment
	return SemanticPath{segments: s}
}

// Segments returns a copy of the path's segments.
func (p SemanticPath) Segments() []string {
	s := make([]string, len(p.segments))
	copy(s, p.segments)
	return s
}

// Depth returns the number of segments.
func (p SemanticPath) Depth() int {
	return len(p.segments)
}

// String renders the path slash-joined, e.g. "root/outer.zip/inner.tar/hit.txt".
func (p SemanticPath) String() string {
	return strings.Join(p.segments, "/")
}

// Contains reports whether the stringified path contains needle as a
// substring. A file can match because an ancestor archive's name matches.
func (p SemanticPath) Contains(needle string) bool {
	return strings.Contains(p.String(), needle)
}

// MarshalJSON encodes the path as its string form.
func (p SemanticPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (p *SemanticPath) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParseSemanticPath(s)
	return nil
}
