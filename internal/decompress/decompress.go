// Package decompress picks a streaming decompressor from a file name.
package decompress

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Format is a compression container format.
type Format string

const (
	None   Format = ""
	Gzip   Format = "gzip"
	Zstd   Format = "zstd"
	LZ4    Format = "lz4"
	Snappy Format = "snappy"
)

// FromPath returns the format implied by the extension of path.
func FromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	case ".sz", ".snappy":
		return Snappy
	}
	return None
}

// NewReader wraps r with the decompressor for f. Snappy input is expected in
// the framed stream format.
func NewReader(f Format, r io.Reader) (io.ReadCloser, error) {
	switch f {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "decompress: gzip")
		}
		return zr, nil
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "decompress: zstd")
		}
		return d.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	}
	return nil, errors.Errorf("decompress: unknown format %q", f)
}
