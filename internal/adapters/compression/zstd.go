package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// zstdFormat implements ports.Decompressor for zstandard streams.
type zstdFormat struct{}

// NewZstd creates a zstd stream decompressor.
func NewZstd() ports.Decompressor {
	return &zstdFormat{}
}

func (z *zstdFormat) Name() string {
	return "zstd"
}

func (z *zstdFormat) WrapReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	return zr.IOReadCloser(), nil
}
