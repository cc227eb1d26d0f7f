package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nwaples/rardecode/v2"
)

// RarBackend unpacks rar archives (v4 and v5) via nwaples/rardecode.
type RarBackend struct{}

func (b *RarBackend) Extract(src, dst string) error {
	r, err := rardecode.OpenReader(src)
	if err != nil {
		return fmt.Errorf("rar: %w", err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("rar: %w", err)
		}

		target, err := safeJoin(dst, header.Name)
		if err != nil {
			return err
		}

		if header.IsDir {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, header.Mode())
		if err != nil {
			return err
		}

		if _, err := io.Copy(out, r); err != nil {
			out.Close()
			return err
		}
		out.Close()
	}

	return nil
}
