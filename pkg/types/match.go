package types

// MatchKind identifies where in a file the search string was found.
type MatchKind string

const (
	// KindFilename means the semantic path itself contains the string.
	KindFilename MatchKind = "filename"
	// KindText means the string occurs in the file's decoded text content.
	KindText MatchKind = "text-content"
	// KindBinary means an encoded form of the string occurs in the raw bytes.
	KindBinary MatchKind = "binary-content"
)

// MatchRecord is a single successful match. Records are accumulated in an
// append-only, enumeration-ordered sequence for the whole run.
type MatchRecord struct {
	Kind         MatchKind    `json:"kind"`
	SemanticPath SemanticPath `json:"semantic_path"`
	// RealPath is where the file lived on disk when it matched. For files
	// inside archives this points into a scratch directory that is deleted
	// once its subtree finishes, so it is informational only.
	RealPath string `json:"real_path"`
	// Encoding is set for binary-content matches only, e.g. "EUC-JP".
	Encoding string `json:"encoding,omitempty"`
}
