package csvbind

import (
	"strconv"

	"github.com/pkg/errors"
)

// Column declares one position of a row schema: the Go type the field is bound
// to and the conversion from raw field bytes to that type.
//
// Parse is never called for an empty field; the zero value of T is bound instead.
// The bytes passed to Parse are only valid for the duration of the call.
type Column[T any] struct {
	Name  string
	Parse func(field []byte) (T, error)

	discard bool
}

// ColumnDef is a Column with its type erased, used to build a schema whose
// arity is only known at run time (see NewRow).
type ColumnDef interface {
	columnName() string
	newSlot() slot
}

func (c Column[T]) columnName() string {
	return c.Name
}

func (c Column[T]) newSlot() slot {
	if !c.discard && c.Parse == nil {
		panic("csvbind: column " + strconv.Quote(c.Name) + " has no Parse function")
	}
	return &typedSlot[T]{parse: c.Parse, discard: c.discard}
}

// Custom registers a conversion for any type T.
func Custom[T any](name string, parse func(field []byte) (T, error)) Column[T] {
	return Column[T]{Name: name, Parse: parse}
}

// Ignored is the value type of a Skip column.
type Ignored struct{}

// Skip returns a column that accepts any bytes and never stores them. Use it to
// step over a column positionally.
func Skip() Column[Ignored] {
	return Column[Ignored]{Name: "skip", discard: true}
}

// String binds the field as a string. The value is a copy of the field bytes.
func String() Column[string] {
	return Column[string]{Name: "string", Parse: func(b []byte) (string, error) {
		return string(b), nil
	}}
}

// Bytes binds the field as a byte slice that the handler may retain.
func Bytes() Column[[]byte] {
	return Column[[]byte]{Name: "bytes", Parse: func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	}}
}

// Bool binds the field using strconv.ParseBool.
func Bool() Column[bool] {
	return Column[bool]{Name: "bool", Parse: func(b []byte) (bool, error) {
		return strconv.ParseBool(string(b))
	}}
}

func Int() Column[int] {
	return signed[int]("int", strconv.IntSize)
}

func Int8() Column[int8] {
	return signed[int8]("int8", 8)
}

func Int16() Column[int16] {
	return signed[int16]("int16", 16)
}

func Int32() Column[int32] {
	return signed[int32]("int32", 32)
}

func Int64() Column[int64] {
	return signed[int64]("int64", 64)
}

func Uint() Column[uint] {
	return unsigned[uint]("uint", strconv.IntSize)
}

func Uint8() Column[uint8] {
	return unsigned[uint8]("uint8", 8)
}

func Uint16() Column[uint16] {
	return unsigned[uint16]("uint16", 16)
}

func Uint32() Column[uint32] {
	return unsigned[uint32]("uint32", 32)
}

func Uint64() Column[uint64] {
	return unsigned[uint64]("uint64", 64)
}

func Float32() Column[float32] {
	return Column[float32]{Name: "float32", Parse: func(b []byte) (float32, error) {
		v, err := strconv.ParseFloat(string(b), 32)
		return float32(v), err
	}}
}

func Float64() Column[float64] {
	return Column[float64]{Name: "float64", Parse: func(b []byte) (float64, error) {
		return strconv.ParseFloat(string(b), 64)
	}}
}

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](name string, bits int) Column[T] {
	return Column[T]{Name: name, Parse: func(b []byte) (T, error) {
		v, err := strconv.ParseInt(string(b), 10, bits)
		return T(v), err
	}}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](name string, bits int) Column[T] {
	return Column[T]{Name: name, Parse: func(b []byte) (T, error) {
		v, err := strconv.ParseUint(string(b), 10, bits)
		return T(v), err
	}}
}

// ByName returns the built-in column registered under name, as used by
// schemas read from configuration ("int", "float64", "string", "skip", ...).
func ByName(name string) (ColumnDef, error) {
	switch name {
	case "skip", "ignore", "-":
		return Skip(), nil
	case "string":
		return String(), nil
	case "bytes":
		return Bytes(), nil
	case "bool":
		return Bool(), nil
	case "int":
		return Int(), nil
	case "int8":
		return Int8(), nil
	case "int16":
		return Int16(), nil
	case "int32":
		return Int32(), nil
	case "int64":
		return Int64(), nil
	case "uint":
		return Uint(), nil
	case "uint8":
		return Uint8(), nil
	case "uint16":
		return Uint16(), nil
	case "uint32":
		return Uint32(), nil
	case "uint64":
		return Uint64(), nil
	case "float32":
		return Float32(), nil
	case "float64", "float":
		return Float64(), nil
	}
	return nil, errors.Errorf("csvbind: unknown column type %q", name)
}
