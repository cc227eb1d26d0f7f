// Package burrow recursively searches a directory tree for a literal string,
// transparently descending into nested archives (tar, zip, 7z, rar) as if
// their contents were part of the filesystem.
//
// # Basic Usage
//
// Search a directory and inspect the results:
//
//	records, err := burrow.Search("xyz42", "/path/to/dir")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range records {
//	    fmt.Printf("%s: %s\n", r.Kind, r.SemanticPath)
//	}
//
// A record's SemanticPath reflects every archive crossed to reach the file,
// e.g. "root/outer.zip/inner.tar/hit.txt".
//
// # Options
//
// Bound archive nesting and restrict binary-match encodings:
//
//	records, err := burrow.Search("xyz42", "/path/to/dir",
//	    burrow.WithMaxDepth(4),
//	    burrow.WithEncodings("UTF-8", "Shift-JIS"),
//	)
package burrow

import (
	"github.com/hollow-labs/burrow/pkg/search"
	"github.com/hollow-labs/burrow/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/hollow-labs/burrow" without subpackages.
type (
	// MatchRecord is a single successful match.
	MatchRecord = types.MatchRecord

	// MatchKind identifies where in a file the search string was found.
	MatchKind = types.MatchKind

	// SemanticPath is the logical location of a file through nested archives.
	SemanticPath = types.SemanticPath

	// Emitter receives traversal events as they happen.
	Emitter = search.Emitter
)

// Re-export match kind constants.
const (
	KindFilename = types.KindFilename
	KindText     = types.KindText
	KindBinary   = types.KindBinary
)

// Option configures a search run.
type Option func(*search.Config)

// WithMaxDepth bounds archive nesting; subtrees beyond the bound are skipped
// with a warning. Default is search.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(c *search.Config) {
		c.MaxDepth = depth
	}
}

// WithEncodings sets the binary-match encodings in priority order.
// Default is UTF-8, EUC-JP, Shift-JIS.
func WithEncodings(names ...string) Option {
	return func(c *search.Config) {
		c.Encodings = names
	}
}

// WithEmitter routes traversal events (progress, warnings, matches) to e.
// By default events are discarded.
func WithEmitter(e Emitter) Option {
	return func(c *search.Config) {
		c.Emitter = e
	}
}

// WithIgnoreFile excludes entries under the root matching the gitignore
// patterns in the named file. Archive contents are never filtered.
func WithIgnoreFile(path string) Option {
	return func(c *search.Config) {
		c.IgnoreFile = path
	}
}

// Search walks root depth-first looking for needle and returns all match
// records in enumeration order. It fails only on an unusable root; archive
// extraction failures and unreadable files degrade to emitter warnings.
func Search(needle, root string, opts ...Option) ([]MatchRecord, error) {
	cfg := search.Config{
		Needle: needle,
		Root:   root,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	engine, err := search.New(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Search()
}
