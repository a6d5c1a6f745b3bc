package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// gzipFormat implements ports.Decompressor for gzip streams.
type gzipFormat struct{}

// NewGzip creates a gzip stream decompressor.
func NewGzip() ports.Decompressor {
	return &gzipFormat{}
}

func (g *gzipFormat) Name() string {
	return "gzip"
}

func (g *gzipFormat) WrapReader(r io.Reader) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	return gr, nil
}
