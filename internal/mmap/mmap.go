// Package mmap maps whole files read-only into memory.
package mmap

// File is a read-only view of a file's contents. Close releases it; the
// slice returned by Bytes must not be used afterwards.
type File struct {
	data    []byte
	release func() error
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the size of the mapping.
func (f *File) Len() int {
	return len(f.data)
}

// Close unmaps the file and closes its descriptor. Calling Close twice is a no-op.
func (f *File) Close() error {
	if f.release == nil {
		return nil
	}
	release := f.release
	f.release = nil
	f.data = nil
	return release()
}
