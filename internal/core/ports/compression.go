package ports

import "io"

// Defines the interface for transparent source decompression.
// This allows us to swap compression formats without changing core logic.
type Decompressor interface {
	// Name returns the format name, e.g. "zstd" or "gzip".
	Name() string

	// WrapReader wraps a compressed byte source with a reader that
	// yields the decompressed stream. Closing the returned reader does
	// not close the underlying source.
	WrapReader(r io.Reader) (io.ReadCloser, error)
}
