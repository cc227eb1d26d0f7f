// Package extract unpacks archives into scratch directories. Each supported
// format has its own backend; all backend failures surface as a single
// *ExtractionError so callers can treat "could not extract" uniformly.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hollow-labs/burrow/pkg/sniff"
)

// ExtractionError reports a failed extraction: the file carried a recognized
// archive signature but its backend could not unpack it (truncation,
// unsupported compression method, malformed header). It is always non-fatal
// to a traversal.
type ExtractionError struct {
	Format sniff.Format
	Path   string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Backend fully unpacks one archive file into a destination directory.
type Backend interface {
	Extract(src, dst string) error
}

// Extractor dispatches extraction to per-format backends.
type Extractor struct {
	backends map[sniff.Format]Backend
}

// New creates an Extractor with all builtin backends registered.
func New() *Extractor {
	return &Extractor{
		backends: map[sniff.Format]Backend{
			sniff.Tar:      &TarBackend{},
			sniff.Zip:      &ZipBackend{},
			sniff.SevenZip: &SevenZipBackend{},
			sniff.Rar:      &RarBackend{},
		},
	}
}

// Extract unpacks the archive at src into dst. dst must exist and should be
// owned exclusively by the caller: on failure the directory may hold partial
// output and the caller is expected to discard it.
func (e *Extractor) Extract(format sniff.Format, src, dst string) error {
	b, ok := e.backends[format]
	if !ok {
		return &ExtractionError{Format: format, Path: src, Err: errors.New("no backend for format")}
	}
	if err := b.Extract(src, dst); err != nil {
		return &ExtractionError{Format: format, Path: src, Err: err}
	}
	return nil
}

// safeJoin joins an archive member name onto dst, rejecting names that could
// escape it (zip-slip).
func safeJoin(dst, name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("unsafe path in archive: %s", name)
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("absolute path in archive: %s", name)
	}
	return filepath.Join(dst, name), nil
}
