package csvbind

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Disposition is an ErrorPolicy's decision for a field that failed to convert.
type Disposition uint8

const (
	// DropRow suppresses the handler call for the row; parsing continues.
	DropRow Disposition = iota
	// KeepDefault binds the column's zero value and keeps the row.
	KeepDefault
	// Abort stops the parse with a CodeConversion status.
	Abort
)

func (d Disposition) String() string {
	switch d {
	case DropRow:
		return "drop_row"
	case KeepDefault:
		return "keep_default"
	case Abort:
		return "abort"
	}
	return "unknown"
}

// ErrorPolicy is consulted once for every field whose conversion fails,
// before the next field of the row is processed.
type ErrorPolicy interface {
	OnConversionError(err *ConversionError) Disposition
}

// ErrorPolicyFunc adapts a function to ErrorPolicy.
type ErrorPolicyFunc func(err *ConversionError) Disposition

func (f ErrorPolicyFunc) OnConversionError(err *ConversionError) Disposition {
	return f(err)
}

// LogAndDrop logs every conversion failure at error level and drops the row.
// A nil logger writes to stderr.
func LogAndDrop(logger *zap.Logger) ErrorPolicy {
	if logger == nil {
		logger = stderrLogger()
	}
	return ErrorPolicyFunc(func(err *ConversionError) Disposition {
		logger.Error("csvbind: dropping row with unconvertible field",
			zap.Int("row", err.Row),
			zap.Int("column", err.Column),
			zap.String("type", err.Name),
			zap.String("field", err.Field),
			zap.Error(err.Err),
		)
		return DropRow
	})
}

// KeepDefaults binds the zero value for every unconvertible field.
func KeepDefaults() ErrorPolicy {
	return ErrorPolicyFunc(func(*ConversionError) Disposition {
		return KeepDefault
	})
}

// FailFast aborts the parse on the first unconvertible field.
func FailFast() ErrorPolicy {
	return ErrorPolicyFunc(func(*ConversionError) Disposition {
		return Abort
	})
}

var stderrLogger = sync.OnceValue(func() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.ErrorLevel)
	return zap.New(core)
})
