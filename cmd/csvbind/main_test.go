package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func tempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

const sales = "region,rep,amount\n" +
	"north,ann,10.5\n" +
	"south,bob,3\n" +
	"# north,carl,1000\n" +
	"north,dee,4.5\n" +
	"south,eve,oops\n"

func TestSumFile(t *testing.T) {
	path := tempFile(t, "sales.csv", []byte(sales))

	out, err := execute(t, "", "sum", path, "--key", "0", "--value", "2", "--skip-header", "--comment", "#")
	require.NoError(t, err)
	require.Equal(t, "north\t15\nsouth\t3\n", out)
}

func TestSumStdin(t *testing.T) {
	out, err := execute(t, "a;1\nb;2\na;3\n", "sum", "-", "--delimiter", ";")
	require.NoError(t, err)
	require.Equal(t, "a\t4\nb\t2\n", out)
}

func TestSumStrict(t *testing.T) {
	path := tempFile(t, "sales.csv", []byte(sales))

	_, err := execute(t, "", "sum", path, "--key", "0", "--value", "2", "--skip-header", "--comment", "#", "--strict")
	require.Error(t, err)
	require.Contains(t, err.Error(), "code 3")
}

func TestSumLatin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("café,2\ncafé,3\n")
	require.NoError(t, err)
	path := tempFile(t, "latin1.csv", []byte(encoded))

	out, err := execute(t, "", "sum", path, "--encoding", "latin1")
	require.NoError(t, err)
	require.Equal(t, "café\t5\n", out)
}

func TestSumLatin1Compressed(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("ñ,1\nñ,1\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(encoded))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := tempFile(t, "latin1.csv.gz", buf.Bytes())

	out, err := execute(t, "", "sum", path, "--encoding", "latin1")
	require.NoError(t, err)
	require.Equal(t, "ñ\t2\n", out)
}

func TestSumRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "", "sum", "-", "--key", "1", "--value", "1")
	require.Error(t, err)

	_, err = execute(t, "", "sum", "-", "--delimiter", "ab")
	require.ErrorContains(t, err, "exactly one byte")

	_, err = execute(t, "", "sum", "-", "--encoding", "ebcdic")
	require.ErrorContains(t, err, "unsupported encoding")

	_, err = execute(t, "", "sum", "-", "--delimiter", `"`)
	require.ErrorContains(t, err, "delimiter and quote must differ")
}

func TestSumMissingFile(t *testing.T) {
	_, err := execute(t, "", "sum", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorContains(t, err, "no such file or directory")
}

func TestCount(t *testing.T) {
	path := tempFile(t, "sales.csv", []byte(sales))

	out, err := execute(t, "", "count", path, "--skip-header", "--comment", "#")
	require.NoError(t, err)
	require.Contains(t, out, "records\t6\n")
	require.Contains(t, out, "emitted\t4\n")
	require.Contains(t, out, "filtered\t1\n")
	require.Contains(t, out, "header\t1\n")
}
