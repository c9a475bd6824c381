//go:build unix

package mmap

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Open maps the file at path. Every error path releases what was acquired
// before it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, &os.PathError{Op: "mmap", Path: path, Err: syscall.EISDIR}
	}

	size := fi.Size()
	if size == 0 {
		// Zero-length mappings are rejected by the kernel.
		return &File{release: f.Close}, nil
	}
	if int64(int(size)) != size {
		f.Close()
		return nil, errors.Errorf("mmap: %s: file too large (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}

	return &File{
		data: data,
		release: func() error {
			err := unix.Munmap(data)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}, nil
}
