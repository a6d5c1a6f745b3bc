// Package compression provides transparent decompression of checksum
// sources, so a .zst or .gz file can be checksummed by its uncompressed
// content. Decompressors wrap the byte source before it reaches the
// engine; the engine itself always hashes exactly the bytes it reads.
package compression

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// ForPath picks a decompressor based on the file extension. Returns nil
// when the extension matches no known compression format.
func ForPath(path string) ports.Decompressor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return NewZstd()
	case ".gz", ".gzip":
		return NewGzip()
	default:
		return nil
	}
}

// WrapSource couples the decompressed stream with its underlying source
// so that closing the returned reader releases both, keeping the
// engine's close-on-every-exit-path contract intact.
func WrapSource(dec ports.Decompressor, underlying io.ReadCloser) (io.ReadCloser, error) {
	r, err := dec.WrapReader(underlying)
	if err != nil {
		return nil, err
	}
	return &source{Reader: r, closers: []io.Closer{r, underlying}}, nil
}

type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
