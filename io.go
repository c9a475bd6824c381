package csvbind

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/oleg578/csvbind/internal/decompress"
	"github.com/oleg578/csvbind/internal/mmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseReader feeds r to the parser in chunks until r is exhausted, then
// finishes the stream. A read error other than io.EOF fails the parse.
func (p *Parser) ParseReader(r io.Reader) error {
	if p.state == Failed {
		return p.err()
	}

	buf := make([]byte, p.cfg.chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if perr := p.Parse(buf[:n]); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			p.fail(ioStatus(err))
			return p.err()
		}
	}
	return p.Finish()
}

// ParseFile maps the file at path into memory, parses its whole contents and
// finishes the stream. Files ending in .gz, .zst, .lz4 or .sz are decompressed
// on the fly. The mapping is released before ParseFile returns.
func (p *Parser) ParseFile(path string) (err error) {
	if p.state == Failed {
		return p.err()
	}

	m, err := mmap.Open(path)
	if err != nil {
		p.fail(ioStatus(err))
		return p.err()
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			p.fail(ioStatus(cerr))
			err = p.err()
		}
	}()
	p.logger.Debug("csvbind: mapped file", zap.String("path", path), zap.Int("size", len(m.Bytes())))

	if format := decompress.FromPath(path); format != decompress.None {
		rc, err := decompress.NewReader(format, bytes.NewReader(m.Bytes()))
		if err != nil {
			p.fail(ioStatus(err))
			return p.err()
		}
		defer rc.Close()
		return p.ParseReader(rc)
	}

	if err := p.Parse(m.Bytes()); err != nil {
		return err
	}
	return p.Finish()
}

// stripBOM consumes a leading UTF-8 BOM, possibly split across chunks. When
// bytes held back from earlier chunks turn out not to start a BOM they are
// returned as held, to be fed before rest.
func (p *Parser) stripBOM(chunk []byte) (held, rest []byte) {
	if !p.bomActive {
		return nil, chunk
	}

	n := p.bomMatched
	for len(chunk) > 0 && n < len(utf8BOM) {
		if chunk[0] != utf8BOM[n] {
			p.bomActive = false
			return utf8BOM[:n], chunk
		}
		chunk = chunk[1:]
		n++
	}
	if n == len(utf8BOM) {
		p.bomActive = false
	}
	p.bomMatched = n
	return nil, chunk
}
