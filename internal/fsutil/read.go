// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegular is returned when a path names a directory or another
// non-regular file.
var ErrNotRegular = errors.New("not a regular file")

// ReadRegularFile returns the contents of the regular file at path.
func ReadRegularFile(path string) ([]byte, error) {
	if path == "" {
		panic("path must not be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return os.ReadFile(path)
}
