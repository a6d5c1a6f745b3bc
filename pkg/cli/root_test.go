package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	return path
}

func TestRunMatchedCandidate(t *testing.T) {
	path := writeTempFile(t, "abc.txt", []byte("abc"))

	// MD5 of "abc"; separators and case are tolerated.
	code := Run(context.Background(), []string{
		"fsum", path, "9001-5098-3CD2-4FB0-D696-3F7D-28E1-7F72",
	})
	assert.Equal(t, ExitSuccess, code)
}

func TestRunMismatchedCandidate(t *testing.T) {
	path := writeTempFile(t, "abc.txt", []byte("abc"))

	code := Run(context.Background(), []string{"fsum", path, "deadbeef"})
	assert.Equal(t, ExitFailure, code)
}

func TestRunNoCandidates(t *testing.T) {
	path := writeTempFile(t, "abc.txt", []byte("abc"))

	code := Run(context.Background(), []string{"fsum", path})
	assert.Equal(t, ExitUnknown, code)
}

func TestRunMissingFile(t *testing.T) {
	code := Run(context.Background(), []string{
		"fsum", filepath.Join(t.TempDir(), "nope.txt"),
	})
	assert.Equal(t, ExitFailure, code)
}

func TestRunMissingArguments(t *testing.T) {
	code := Run(context.Background(), []string{"fsum"})
	assert.Equal(t, ExitFailure, code)
}

func TestRunInvalidChunkSize(t *testing.T) {
	path := writeTempFile(t, "abc.txt", []byte("abc"))

	code := Run(context.Background(), []string{"fsum", "--chunk-size", "128", path})
	assert.Equal(t, ExitFailure, code)
}

func TestRunDecompressedSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc.txt.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	// With --decompress the digests are those of the uncompressed
	// content, so the MD5 of "abc" must match.
	code := Run(context.Background(), []string{
		"fsum", "--decompress", path, "900150983cd24fb0d6963f7d28e17f72",
	})
	assert.Equal(t, ExitSuccess, code)
}
