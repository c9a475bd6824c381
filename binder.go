package csvbind

import (
	"fmt"
)

// ConversionError describes a field whose bytes could not be converted to the
// type declared for its column.
type ConversionError struct {
	// Row is the 1-based number of the record within the parse.
	Row int
	// Column is the 0-based field index, as passed to filters.
	Column int
	// Name is the name of the column's declaration.
	Name string
	// Field is a copy of the raw field.
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvbind: row %d, column %d (%s): cannot convert %q: %v", e.Row, e.Column, e.Name, e.Field, e.Err)
}

// Message is the human-readable part of the error, without location.
func (e *ConversionError) Message() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// slot is the storage cell of one column for the current row.
type slot interface {
	bind(field []byte) error
	clear()
	value() any
}

type typedSlot[T any] struct {
	val     T
	parse   func([]byte) (T, error)
	discard bool
}

func (s *typedSlot[T]) bind(field []byte) error {
	if s.discard {
		return nil
	}
	if len(field) == 0 {
		var zero T
		s.val = zero
		return nil
	}
	v, err := s.parse(field)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}

func (s *typedSlot[T]) clear() {
	var zero T
	s.val = zero
}

func (s *typedSlot[T]) value() any {
	return s.val
}

// binder holds one slot per declared column and the closure that hands the
// slots to the user's handler.
type binder struct {
	names []string
	slots []slot
	emit  func()
}

func newBinder(defs ...ColumnDef) *binder {
	b := &binder{
		names: make([]string, len(defs)),
		slots: make([]slot, len(defs)),
	}
	for i, d := range defs {
		b.names[i] = d.columnName()
		b.slots[i] = d.newSlot()
	}
	return b
}

// width is the number of declared columns.
func (b *binder) width() int {
	return len(b.slots)
}

// bind converts field into the slot of column. Fields past the declared
// width are ignored.
func (b *binder) bind(column int, field []byte) error {
	if column >= len(b.slots) {
		return nil
	}
	return b.slots[column].bind(field)
}

// clear resets one slot to its zero value.
func (b *binder) clear(column int) {
	if column < len(b.slots) {
		b.slots[column].clear()
	}
}

// reset clears every slot so a short row binds zero values.
func (b *binder) reset() {
	for _, s := range b.slots {
		s.clear()
	}
}

func (b *binder) name(column int) string {
	if column < len(b.names) {
		return b.names[column]
	}
	return ""
}

// Row is the typed tuple handed to a NewRow handler. It is only valid for the
// duration of the handler call.
type Row struct {
	slots []slot
}

// Len returns the number of declared columns.
func (r Row) Len() int {
	return len(r.slots)
}

// Value returns the value bound to column i.
func (r Row) Value(i int) any {
	return r.slots[i].value()
}

// Values returns all bound values in declared order.
func (r Row) Values() []any {
	out := make([]any, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.value()
	}
	return out
}

// Get returns the value of column i as T. It reports false when i is out of
// range or the column was declared with a different type.
func Get[T any](r Row, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(r.slots) {
		return zero, false
	}
	s, ok := r.slots[i].(*typedSlot[T])
	if !ok {
		return zero, false
	}
	return s.val, true
}
