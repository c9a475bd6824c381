//go:build !unix

package mmap

import "os"

// Open reads the whole file at path; platforms without mmap get a heap copy.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data, release: func() error { return nil }}, nil
}
