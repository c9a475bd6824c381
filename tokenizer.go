package csvbind

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBareQuote is returned when an unexpected quote is found in an unquoted field.
	ErrBareQuote = errors.New("csvbind: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is still open when the stream is finished.
	ErrUnterminatedQuote = errors.New("csvbind: unterminated quoted field")
)

// ParseError contains location information for CSV tokenizing errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvbind: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EventHandler receives the field and record boundaries found by a Tokenizer.
//
// The field slice passed to OnField is only valid for the duration of the call.
type EventHandler interface {
	OnField(field []byte, index int)
	OnRecord()
}

type tokenizerState uint8

const (
	stateFieldStart tokenizerState = iota
	stateUnquoted
	stateQuoted
	// a quote was seen inside a quoted field; the next byte decides
	// between an escaped quote and the end of the quoted section.
	stateQuoteInQuoted
	// the record ended on '\r'; a following '\n' belongs to it.
	stateCR
)

// Tokenizer is an incremental, push-based CSV tokenizer. Bytes may be fed in
// chunks of any size; a field or record split across chunks is carried over.
type Tokenizer struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte

	state  tokenizerState
	field  []byte
	index  int
	line   int
	column int
	err    error
}

// NewTokenizer returns a Tokenizer using ',' and '"'.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		Comma:  ',',
		Quote:  '"',
		field:  make([]byte, 0, 512),
		line:   1,
		column: 1,
	}
}

// Err returns the sticky tokenizing error, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// Reset discards any partial record and error and prepares t for a new stream.
func (t *Tokenizer) Reset() {
	t.state = stateFieldStart
	t.field = t.field[:0]
	t.index = 0
	t.line = 1
	t.column = 1
	t.err = nil
}

// Feed tokenizes chunk, reporting every complete field and record to h.
// A field that is still open at the end of chunk is kept until the next call.
// Once an error is returned, every later call returns the same error.
func (t *Tokenizer) Feed(chunk []byte, h EventHandler) error {
	if t.err != nil {
		return t.err
	}
	if t.line == 0 {
		t.line, t.column = 1, 1
	}

	comma, quote := t.delimiters()

	// start marks where the current field's bytes begin in chunk, or -1 when
	// they live entirely in t.field. end is the closing quote position while
	// in stateQuoteInQuoted.
	start, end := -1, 0
	if t.state == stateUnquoted || t.state == stateQuoted {
		start = 0
	}

	i := 0
	for i < len(chunk) {
		c := chunk[i]

		switch t.state {
		case stateCR:
			t.state = stateFieldStart
			if c == '\n' {
				i++
			}

		case stateFieldStart:
			switch c {
			case quote:
				t.state = stateQuoted
				i++
				t.column++
				start = i
			case comma:
				t.emitField(h, nil)
				i++
				t.column++
			case '\n', '\r':
				// A blank line produces no record.
				if t.index > 0 {
					t.emitField(h, nil)
					t.endRecord(h)
				}
				i++
				t.newLine()
				if c == '\r' {
					t.state = stateCR
				}
			default:
				t.state = stateUnquoted
				start = i
			}

		case stateUnquoted:
			// Copy consecutive plain bytes before the next delimiter.
			j := i
			for j < len(chunk) {
				b := chunk[j]
				if b == comma || b == quote || b == '\n' || b == '\r' {
					break
				}
				j++
			}
			t.column += j - i
			i = j
			if i == len(chunk) {
				break
			}

			switch chunk[i] {
			case quote:
				t.err = t.wrapError(ErrBareQuote)
				return t.err
			case comma:
				t.emitField(h, t.take(chunk, start, i))
				start = -1
				t.state = stateFieldStart
				i++
				t.column++
			default:
				t.emitField(h, t.take(chunk, start, i))
				t.endRecord(h)
				start = -1
				t.state = stateFieldStart
				if chunk[i] == '\r' {
					t.state = stateCR
				}
				i++
				t.newLine()
			}

		case stateQuoted:
			j := i
			for j < len(chunk) {
				b := chunk[j]
				if b == quote {
					break
				}
				if b == '\n' {
					// Track logical line numbers for embedded newlines.
					t.newLine()
				} else {
					t.column++
				}
				j++
			}
			i = j
			if i == len(chunk) {
				break
			}
			end = i
			t.state = stateQuoteInQuoted
			i++
			t.column++

		case stateQuoteInQuoted:
			switch c {
			case quote:
				// Double quote inside quotes represents an escaped quote.
				if start >= 0 {
					t.field = append(t.field, chunk[start:end]...)
				}
				t.field = append(t.field, quote)
				t.state = stateQuoted
				i++
				t.column++
				start = i
			case comma:
				t.emitField(h, t.take(chunk, start, end))
				start = -1
				t.state = stateFieldStart
				i++
				t.column++
			case '\n', '\r':
				t.emitField(h, t.take(chunk, start, end))
				t.endRecord(h)
				start = -1
				t.state = stateFieldStart
				if c == '\r' {
					t.state = stateCR
				}
				i++
				t.newLine()
			default:
				// Bytes after the closing quote continue the field unquoted.
				if start >= 0 {
					t.field = append(t.field, chunk[start:end]...)
				}
				start = i
				t.state = stateUnquoted
			}
		}
	}

	if start >= 0 {
		stop := len(chunk)
		if t.state == stateQuoteInQuoted {
			stop = end
		}
		t.field = append(t.field, chunk[start:stop]...)
	}
	return nil
}

// Finish flushes a pending partial record and resets t for the next stream.
// It reports ErrUnterminatedQuote if a quoted field is still open.
func (t *Tokenizer) Finish(h EventHandler) error {
	if t.err != nil {
		return t.err
	}

	switch t.state {
	case stateQuoted:
		t.err = t.wrapError(ErrUnterminatedQuote)
		return t.err
	case stateUnquoted, stateQuoteInQuoted:
		t.emitField(h, t.field)
		t.endRecord(h)
	case stateFieldStart:
		// Flush a trailing empty field if data ended right after a delimiter.
		if t.index > 0 {
			t.emitField(h, nil)
			t.endRecord(h)
		}
	}

	t.Reset()
	return nil
}

func (t *Tokenizer) delimiters() (comma, quote byte) {
	comma = t.Comma
	if comma == 0 {
		comma = ','
	}
	quote = t.Quote
	if quote == 0 {
		quote = '"'
	}
	return comma, quote
}

// take returns the bytes of the current field ending at chunk[stop], copying
// into t.field only when part of the field came from an earlier chunk or escape.
func (t *Tokenizer) take(chunk []byte, start, stop int) []byte {
	if start < 0 {
		return t.field
	}
	if len(t.field) == 0 {
		return chunk[start:stop]
	}
	t.field = append(t.field, chunk[start:stop]...)
	return t.field
}

func (t *Tokenizer) emitField(h EventHandler, field []byte) {
	h.OnField(field, t.index)
	t.index++
	t.field = t.field[:0]
}

func (t *Tokenizer) endRecord(h EventHandler) {
	h.OnRecord()
	t.index = 0
}

func (t *Tokenizer) newLine() {
	t.line++
	t.column = 1
}

// wrapError attaches the current line and column to err, producing a *ParseError.
func (t *Tokenizer) wrapError(err error) error {
	return &ParseError{Line: t.line, Column: t.column, Err: err}
}
