//go:build unix

package mmap

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDirectory(t *testing.T) {
	t.Parallel()

	_, err := Open(t.TempDir())
	require.ErrorIs(t, err, syscall.EISDIR)
}
