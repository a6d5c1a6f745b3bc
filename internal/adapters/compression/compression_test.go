package compression

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "archive.tar.zst", expected: "zstd"},
		{path: "archive.ZSTD", expected: "zstd"},
		{path: "backup.gz", expected: "gzip"},
		{path: "backup.GZIP", expected: "gzip"},
		{path: "plain.txt", expected: ""},
		{path: "noextension", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			dec := ForPath(tt.path)
			if tt.expected == "" {
				assert.Nil(t, dec)
				return
			}
			require.NotNil(t, dec)
			assert.Equal(t, tt.expected, dec.Name())
		})
	}
}

func TestZstdRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("zstandard payload "), 100)

	var compressed bytes.Buffer
	zw, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	source, err := WrapSource(NewZstd(), io.NopCloser(bytes.NewReader(compressed.Bytes())))
	require.NoError(t, err)

	got, err := io.ReadAll(source)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, source.Close())
}

func TestGzipRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("gzip payload "), 100)

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	_, err := gw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	source, err := WrapSource(NewGzip(), io.NopCloser(bytes.NewReader(compressed.Bytes())))
	require.NoError(t, err)

	got, err := io.ReadAll(source)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, source.Close())
}

func TestGzipRejectsGarbage(t *testing.T) {
	_, err := WrapSource(NewGzip(), io.NopCloser(bytes.NewReader([]byte("not gzip"))))
	assert.Error(t, err)
}
