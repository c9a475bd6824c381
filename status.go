package csvbind

import (
	"syscall"

	"github.com/pkg/errors"
)

// Code classifies the terminal condition of a parse.
type Code int

const (
	CodeOK Code = iota
	// CodeParse is a structural error reported by the tokenizer.
	CodeParse
	// CodeInvalid is a configuration the parser cannot run with.
	CodeInvalid
	// CodeConversion is a conversion failure escalated by an ErrorPolicy.
	CodeConversion
	// CodeIO is an I/O failure without an operating system error number.
	// Failures that carry one use the errno value as their code.
	CodeIO Code = -1
)

// Status is the aggregated outcome of a parse. The zero Status is not valid;
// a parser starts with Code 0 and Message "success".
type Status struct {
	Code    Code
	Message string
	Err     error
}

var success = Status{Code: CodeOK, Message: "success"}

// OK reports whether no error has occurred.
func (s Status) OK() bool {
	return s.Code == CodeOK
}

func (s Status) String() string {
	return s.Message
}

// StatusError is the error returned by Parser methods once the parse failed.
type StatusError struct {
	Status
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func parseStatus(err error) Status {
	return Status{Code: CodeParse, Message: err.Error(), Err: err}
}

func invalidStatus(msg string) Status {
	return Status{Code: CodeInvalid, Message: msg, Err: errors.New(msg)}
}

func conversionStatus(err *ConversionError) Status {
	return Status{Code: CodeConversion, Message: err.Error(), Err: err}
}

// ioStatus maps an I/O failure to a status, using the errno when the error
// chain carries one.
func ioStatus(err error) Status {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return Status{Code: Code(errno), Message: errno.Error(), Err: err}
	}
	return Status{Code: CodeIO, Message: err.Error(), Err: err}
}
