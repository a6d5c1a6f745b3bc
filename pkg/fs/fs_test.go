package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	f, size, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.EqualValues(t, 11, size)
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

func TestOpenDirectory(t *testing.T) {
	_, _, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = Exists(filepath.Join(dir, "absent.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}
