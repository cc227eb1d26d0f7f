// Package search implements the recursive traversal engine: walk a directory,
// classify each file, descend into archives through ephemeral scratch
// directories, and collect matches under their semantic paths.
package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/hollow-labs/burrow/pkg/extract"
	"github.com/hollow-labs/burrow/pkg/match"
	"github.com/hollow-labs/burrow/pkg/sniff"
	"github.com/hollow-labs/burrow/pkg/types"
)

// DefaultMaxDepth bounds archive nesting. Exceeding it skips the subtree
// with a warning rather than recursing forever into pathological inputs
// (an archive that contains itself, for instance).
const DefaultMaxDepth = 16

// Config configures one search run.
type Config struct {
	// Needle is the literal string to search for.
	Needle string
	// Root is the directory to search.
	Root string
	// MaxDepth is the maximum archive nesting depth; 0 means
	// DefaultMaxDepth.
	MaxDepth int
	// Encodings is the binary-match encoding priority order; nil means
	// match.DefaultEncodings.
	Encodings []string
	// Emitter receives traversal events; nil means no events.
	Emitter Emitter
	// IgnoreFile optionally names a gitignore-format file whose patterns
	// exclude entries under Root (not inside archives).
	IgnoreFile string
}

// Engine performs one depth-first, single-threaded search run. Matches are
// collected in directory-enumeration order: a file's records precede later
// siblings', and an archive's entire contents precede the archive's siblings.
type Engine struct {
	cfg       Config
	matcher   *match.Matcher
	extractor *extract.Extractor
	emitter   Emitter
	ignore    *gitignore.GitIgnore
	maxDepth  int
}

// New validates cfg and builds an Engine. An unusable root is the only fatal
// setup condition; everything after setup degrades to warnings.
func New(cfg Config) (*Engine, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid search root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root is not a directory: %s", cfg.Root)
	}

	encodings := cfg.Encodings
	if encodings == nil {
		encodings = match.DefaultEncodings
	}
	matcher, err := match.New(cfg.Needle, encodings)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		matcher:   matcher,
		extractor: extract.New(),
		emitter:   cfg.Emitter,
		maxDepth:  cfg.MaxDepth,
	}
	if e.emitter == nil {
		e.emitter = NopEmitter{}
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxDepth
	}
	if cfg.IgnoreFile != "" {
		ign, err := gitignore.CompileIgnoreFile(cfg.IgnoreFile)
		if err != nil {
			return nil, fmt.Errorf("loading ignore file: %w", err)
		}
		e.ignore = ign
	}
	return e, nil
}

// collector accumulates match records for a run. It is append-only and owned
// by the single traversal goroutine; a synchronized implementation must
// replace direct appends before any parallel traversal is introduced.
type collector struct {
	records []types.MatchRecord
}

func (c *collector) add(r types.MatchRecord) {
	c.records = append(c.records, r)
}

// Search runs the traversal and returns all match records in enumeration
// order. It returns an error only if the root disappears between New and the
// walk; every per-file problem is reported through the emitter instead.
func (e *Engine) Search() ([]types.MatchRecord, error) {
	c := &collector{}
	root := types.NewSemanticPath(e.cfg.Root)
	if err := e.walk(root, e.cfg.Root, 0, c); err != nil {
		return nil, err
	}
	return c.records, nil
}

// walk recursively visits every regular file under realRoot. sem is the
// semantic path of realRoot's logical location; depth is the archive nesting
// level.
func (e *Engine) walk(sem types.SemanticPath, realRoot string, depth int, c *collector) error {
	e.emitter.Info(depth, "entering %s", sem)

	return filepath.WalkDir(realRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == realRoot && depth == 0 {
				return err
			}
			e.emitter.Warn(depth, "skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// Symlinks and other irregular entries are never followed; symlink
		// loops in extracted content would otherwise defeat the depth bound.
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(realRoot, path)
		if err != nil {
			e.emitter.Warn(depth, "skipping %s: %v", path, err)
			return nil
		}
		if e.ignore != nil && depth == 0 && e.ignore.MatchesPath(rel) {
			return nil
		}

		fileSem := sem
		for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
			fileSem = fileSem.Join(seg)
		}

		e.processFile(fileSem, path, depth, c)
		return nil
	})
}

// processFile runs the name check, classifies the file, and routes it to
// either archive recursion or content matching. A name match never
// short-circuits the content checks.
func (e *Engine) processFile(sem types.SemanticPath, path string, depth int, c *collector) {
	if e.matcher.MatchName(sem) {
		e.emitter.Match(depth, "found %q in filename: %s", e.cfg.Needle, sem)
		c.add(types.MatchRecord{
			Kind:         types.KindFilename,
			SemanticPath: sem,
			RealPath:     path,
		})
	}

	format := sniff.Classify(path)
	if format != sniff.Other {
		if depth+1 > e.maxDepth {
			e.emitter.Warn(depth, "max archive depth %d exceeded, skipping %s", e.maxDepth, sem)
			return
		}
		e.descend(sem, path, format, depth, c)
		return
	}

	// Binary first: a hit here suppresses the text check, so each file
	// yields at most one content record.
	if enc, ok := e.matcher.MatchBinary(path); ok {
		e.emitter.Match(depth, "found %q in %s with encoding %s", e.cfg.Needle, sem, enc)
		c.add(types.MatchRecord{
			Kind:         types.KindBinary,
			SemanticPath: sem,
			RealPath:     path,
			Encoding:     enc,
		})
		return
	}
	if e.matcher.MatchText(path) {
		e.emitter.Match(depth, "found %q in %s", e.cfg.Needle, sem)
		c.add(types.MatchRecord{
			Kind:         types.KindText,
			SemanticPath: sem,
			RealPath:     path,
		})
	}
}

// descend extracts an archive into a fresh scratch directory and recurses
// into it. The scratch directory is removed when this subtree completes,
// on every exit path. Extraction failure is a warning: the subtree is
// skipped and the archive file gets no content check.
func (e *Engine) descend(sem types.SemanticPath, path string, format sniff.Format, depth int, c *collector) {
	e.emitter.Info(depth, "extracting %s %s", format, sem)

	scratch, err := os.MkdirTemp("", "burrow-*")
	if err != nil {
		e.emitter.Warn(depth, "failed to create scratch directory for %s: %v", sem, err)
		return
	}
	defer os.RemoveAll(scratch)

	if err := e.extractor.Extract(format, path, scratch); err != nil {
		e.emitter.Warn(depth, "%v", err)
		return
	}

	// Walk errors below the top level have already been reported.
	_ = e.walk(sem, scratch, depth+1, c)
}
