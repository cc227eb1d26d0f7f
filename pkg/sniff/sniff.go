// Package sniff classifies files by their byte content. File extensions are
// never consulted: an archive renamed to .txt is still an archive.
package sniff

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format is the detected archive format of a file.
type Format int

const (
	// Other is anything that is not a recognized archive.
	Other Format = iota
	Tar
	Zip
	SevenZip
	Rar
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case Tar:
		return "tar"
	case Zip:
		return "zip"
	case SevenZip:
		return "7z"
	case Rar:
		return "rar"
	default:
		return "other"
	}
}

// Compression identifies a stream compression wrapper by its magic bytes.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXz
	CompressionZstd
)

var (
	zipMagic      = []byte("PK\x03\x04")
	zipEmptyMagic = []byte("PK\x05\x06")
	sevenZipMagic = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	rarV4Magic    = []byte("Rar!\x1a\x07\x00")
	rarV5Magic    = []byte("Rar!\x1a\x07\x01\x00")
	gzipMagic     = []byte{0x1f, 0x8b}
	bzip2Magic    = []byte("BZh")
	xzMagic       = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	zstdMagic     = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// tar header layout constants
const (
	tarHeaderSize     = 512
	tarMagicOffset    = 257
	tarChecksumOffset = 148
	tarChecksumLen    = 8
)

// Classify determines the archive format of the file at path by inspecting
// its leading bytes. Probes run in a fixed order — tar, zip, 7z, rar — and
// the first match wins; formats with layered signatures (a zip-based
// container, a compressed tarball) therefore classify deterministically.
// Unreadable files classify as Other so that a single bad file never fails
// a traversal.
func Classify(path string) Format {
	f, err := os.Open(path)
	if err != nil {
		return Other
	}
	defer f.Close()

	header := make([]byte, tarHeaderSize)
	n, _ := io.ReadFull(f, header)
	header = header[:n]

	switch {
	case isTar(header) || isCompressedTar(f, header):
		return Tar
	case bytes.HasPrefix(header, zipMagic) || bytes.HasPrefix(header, zipEmptyMagic):
		return Zip
	case bytes.HasPrefix(header, sevenZipMagic):
		return SevenZip
	case bytes.HasPrefix(header, rarV4Magic) || bytes.HasPrefix(header, rarV5Magic):
		return Rar
	default:
		return Other
	}
}

// CompressionOf identifies the stream compression of the given header bytes.
func CompressionOf(header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXz
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// isTar reports whether header is the first block of a tar archive: either
// the POSIX/GNU "ustar" magic, or a pre-POSIX header whose checksum field
// validates.
func isTar(header []byte) bool {
	if len(header) >= tarMagicOffset+5 &&
		bytes.Equal(header[tarMagicOffset:tarMagicOffset+5], []byte("ustar")) {
		return true
	}
	return tarChecksumValid(header)
}

// isCompressedTar reports whether f is a compressed stream whose decompressed
// head is a tar header. Tarballs (.tar.gz and friends) sniff as tar, matching
// how tar tooling treats them. f's read position is not restored.
func isCompressedTar(f *os.File, header []byte) bool {
	comp := CompressionOf(header)
	if comp == CompressionNone {
		return false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false
	}

	var r io.Reader
	switch comp {
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return false
		}
		defer gz.Close()
		r = gz
	case CompressionBzip2:
		r = bzip2.NewReader(f)
	case CompressionXz:
		xr, err := xz.NewReader(f)
		if err != nil {
			return false
		}
		r = xr
	case CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return false
		}
		defer zr.Close()
		r = zr
	}

	head := make([]byte, tarHeaderSize)
	n, _ := io.ReadFull(r, head)
	return isTar(head[:n])
}

// tarChecksumValid recomputes the header checksum over a full 512-byte block
// with the checksum field treated as spaces, accepting both the unsigned and
// the historical signed interpretation.
func tarChecksumValid(header []byte) bool {
	if len(header) < tarHeaderSize {
		return false
	}
	stored, ok := parseOctal(header[tarChecksumOffset : tarChecksumOffset+tarChecksumLen])
	if !ok {
		return false
	}

	var unsigned, signed int64
	for i, b := range header[:tarHeaderSize] {
		if i >= tarChecksumOffset && i < tarChecksumOffset+tarChecksumLen {
			b = ' '
		}
		unsigned += int64(b)
		signed += int64(int8(b))
	}
	// An all-zero block has checksum 256 (eight spaces); it marks end of
	// archive, not a file, so reject it.
	if unsigned == 8*' ' {
		return false
	}
	return stored == unsigned || stored == signed
}

// parseOctal parses a NUL/space padded octal field from a tar header.
func parseOctal(field []byte) (int64, bool) {
	var v int64
	seen := false
	for _, b := range field {
		if b == ' ' || b == 0 {
			if seen {
				break
			}
			continue
		}
		if b < '0' || b > '7' {
			return 0, false
		}
		v = v<<3 | int64(b-'0')
		seen = true
	}
	return v, seen
}
