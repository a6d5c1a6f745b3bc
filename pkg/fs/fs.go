package fs

import (
	"fmt"
	"os"
)

// Open opens the file at path for sequential reading and returns it
// together with its size in bytes. The size feeds progress math only;
// the read loop stops at end-of-stream regardless.
func Open(path string) (*os.File, uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error accessing file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error opening file %s: %w", path, err)
	}

	return f, uint64(info.Size()), nil
}

// Exists checks whether a file exists at the given path.
func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
