// Package dumpfile opens saved registry dumps for parsing.
package dumpfile

import (
	"bytes"
	"fmt"
	"os"
)

// File is a saved dump held in memory. Read it like any io.Reader and Close
// it to release the mapping.
type File struct {
	*bytes.Reader
	path    string
	release func() error
}

// Open maps the dump at path read-only. Platforms without mmap read the file
// instead.
func Open(path string) (*File, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", path, err)
	}
	return &File{Reader: bytes.NewReader(data), path: path, release: release}, nil
}

// Path returns the name the file was opened with.
func (f *File) Path() string { return f.path }

// Close releases the mapping. Reading after Close is not allowed.
func (f *File) Close() error {
	if f.release == nil {
		return nil
	}
	release := f.release
	f.release = nil
	f.Reader = bytes.NewReader(nil)
	return release()
}

func noRelease() error { return nil }

// readFile is the fallback used where mapping is unavailable or pointless.
func readFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noRelease, nil
}
