package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// SevenZipBackend unpacks 7z archives via bodgit/sevenzip.
type SevenZipBackend struct{}

func (b *SevenZipBackend) Extract(src, dst string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := safeJoin(dst, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("7z member %s: %w", f.Name, err)
		}

		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.FileInfo().Mode())
		if err != nil {
			rc.Close()
			return err
		}

		if _, err := io.Copy(out, rc); err != nil {
			rc.Close()
			out.Close()
			return err
		}

		rc.Close()
		out.Close()
	}

	return nil
}
