package extract

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/hollow-labs/burrow/pkg/sniff"
)

// TarBackend unpacks tar archives, transparently decompressing gzip, bzip2,
// xz and zstd wrapped streams.
type TarBackend struct{}

func (b *TarBackend) Extract(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	r, cleanup, err := decompressor(f)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dst, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, header.FileInfo().Mode())
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			out.Close()
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			os.Remove(target)
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// decompressor wraps f in a decompressing reader chosen by sniffing the
// stream head. A plain tar passes through unchanged.
func decompressor(f *os.File) (io.Reader, func(), error) {
	header := make([]byte, 6)
	n, _ := f.Read(header)
	header = header[:n]
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, err
	}

	switch sniff.CompressionOf(header) {
	case sniff.CompressionGzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return gzr, func() { gzr.Close() }, nil
	case sniff.CompressionBzip2:
		return bzip2.NewReader(f), nil, nil
	case sniff.CompressionXz:
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("xz: %w", err)
		}
		return xzr, nil, nil
	case sniff.CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return zr, func() { zr.Close() }, nil
	default:
		return f, nil, nil
	}
}
