package csvbind

import (
	"go.uber.org/zap"
)

const defaultChunkSize = 64 << 10 // 64 KiB

type config struct {
	comma      byte
	quote      byte
	skipHeader bool
	skipBOM    bool
	filters    []Filter
	policy     ErrorPolicy
	logger     *zap.Logger
	metrics    *Metrics
	chunkSize  int
}

func defaultConfig() config {
	return config{
		comma:     ',',
		quote:     '"',
		chunkSize: defaultChunkSize,
	}
}

// Option configures a Parser at construction time.
type Option func(*config)

// WithDelimiter sets the field delimiter. Default is ','.
func WithDelimiter(c byte) Option {
	return func(cfg *config) {
		cfg.comma = c
	}
}

// WithQuote sets the quote character. Default is '"'.
func WithQuote(c byte) Option {
	return func(cfg *config) {
		cfg.quote = c
	}
}

// WithSkipHeader drops the first record of the input.
func WithSkipHeader() Option {
	return func(cfg *config) {
		cfg.skipHeader = true
	}
}

// WithSkipBOM removes a UTF-8 byte order mark from the start of the input.
func WithSkipBOM() Option {
	return func(cfg *config) {
		cfg.skipBOM = true
	}
}

// WithCommentPrefix drops rows whose first field starts with prefix.
func WithCommentPrefix(prefix string) Option {
	return WithFilter(CommentPrefix(prefix))
}

// WithFilter adds a row filter. Filters run in the order they were added.
func WithFilter(f Filter) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.filters = append(cfg.filters, f)
		}
	}
}

// WithErrorPolicy replaces the default LogAndDrop policy.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(cfg *config) {
		cfg.policy = p
	}
}

// WithLogger sets the logger used by the parser and by the default policy.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithMetrics reports parser activity to m.
func WithMetrics(m *Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

// WithChunkSize sets the read size used by ParseReader. Default is 64 KiB.
func WithChunkSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.chunkSize = n
		}
	}
}

// validate returns a message describing why cfg cannot be used, or "".
func (cfg *config) validate() string {
	switch {
	case cfg.comma == cfg.quote:
		return "csvbind: delimiter and quote must differ"
	case cfg.comma == '\n' || cfg.comma == '\r':
		return "csvbind: delimiter cannot be a line terminator"
	case cfg.quote == '\n' || cfg.quote == '\r':
		return "csvbind: quote cannot be a line terminator"
	}
	return ""
}
