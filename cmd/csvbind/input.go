package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/oleg578/csvbind"
	"github.com/oleg578/csvbind/internal/decompress"
)

func singleByte(name, value string) (byte, error) {
	if len(value) != 1 {
		return 0, errors.Errorf("--%s must be exactly one byte, got %q", name, value)
	}
	return value[0], nil
}

// textEncoding returns nil for UTF-8 input, which needs no decoding.
func textEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, errors.Errorf("unsupported encoding %q", name)
}

func (f *rootFlags) parserOptions(logger *zap.Logger) ([]csvbind.Option, error) {
	comma, err := singleByte("delimiter", f.delimiter)
	if err != nil {
		return nil, err
	}
	quote, err := singleByte("quote", f.quote)
	if err != nil {
		return nil, err
	}

	opts := []csvbind.Option{
		csvbind.WithDelimiter(comma),
		csvbind.WithQuote(quote),
		csvbind.WithCommentPrefix(f.comment),
		csvbind.WithLogger(logger),
	}
	if f.skipHeader {
		opts = append(opts, csvbind.WithSkipHeader())
	}
	if f.skipBOM {
		opts = append(opts, csvbind.WithSkipBOM())
	}
	if f.strict {
		opts = append(opts, csvbind.WithErrorPolicy(csvbind.FailFast()))
	} else {
		opts = append(opts, csvbind.WithErrorPolicy(csvbind.LogAndDrop(logger)))
	}
	return opts, nil
}

// parseInput runs p over path, or over stdin when path is "-". UTF-8 files
// are memory mapped; other encodings are decoded while streaming.
func parseInput(p *csvbind.Parser, path string, stdin io.Reader, enc encoding.Encoding) error {
	if path == "-" {
		var r io.Reader = stdin
		if enc != nil {
			r = enc.NewDecoder().Reader(r)
		}
		return p.ParseReader(r)
	}

	if enc == nil {
		return p.ParseFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rc, err := decompress.NewReader(decompress.FromPath(path), f)
	if err != nil {
		return err
	}
	defer rc.Close()

	return p.ParseReader(enc.NewDecoder().Reader(rc))
}
