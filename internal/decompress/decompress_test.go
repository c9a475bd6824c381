package decompress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"a.csv":          None,
		"a.csv.gz":       Gzip,
		"A.CSV.GZIP":     Gzip,
		"a.zst":          Zstd,
		"dir.x/a.zstd":   Zstd,
		"a.lz4":          LZ4,
		"a.sz":           Snappy,
		"a.snappy":       Snappy,
		"gz":             None,
		"archive.tar.xz": None,
	}
	for path, want := range cases {
		require.Equal(t, want, FromPath(path), path)
	}
}

func TestNewReaderRoundTrip(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("1,two,\"three\"\n", 500)

	writers := map[Format]func(w io.Writer) (io.WriteCloser, error){
		Gzip: func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		Zstd: func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		LZ4:  func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil },
		Snappy: func(w io.Writer) (io.WriteCloser, error) {
			return snappy.NewBufferedWriter(w), nil
		},
	}

	for format, newWriter := range writers {
		var buf bytes.Buffer
		w, err := newWriter(&buf)
		require.NoError(t, err)
		_, err = io.WriteString(w, payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		rc, err := NewReader(format, &buf)
		require.NoError(t, err, format)
		got, err := io.ReadAll(rc)
		require.NoError(t, err, format)
		require.NoError(t, rc.Close())
		require.Equal(t, payload, string(got), format)
	}
}

func TestNewReaderNone(t *testing.T) {
	t.Parallel()

	rc, err := NewReader(None, strings.NewReader("plain"))
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "plain", string(got))
}

func TestNewReaderErrors(t *testing.T) {
	t.Parallel()

	_, err := NewReader(Gzip, strings.NewReader("nope"))
	require.Error(t, err)

	_, err = NewReader(Format("brotli"), strings.NewReader(""))
	require.ErrorContains(t, err, "unknown format")
}
