package csvbind

import (
	"strconv"

	"go.uber.org/zap"
)

// State is the lifecycle state of a Parser.
type State uint8

const (
	// Idle parsers have not been fed any input.
	Idle State = iota
	// Streaming parsers have been fed input that is not finished yet.
	Streaming
	// Finished parsers have flushed their last record.
	Finished
	// Failed parsers hit a terminal error and ignore further input.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Streaming:
		return "streaming"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Stats counts what a Parser has done so far.
type Stats struct {
	Bytes             int64
	Records           int
	Emitted           int
	Filtered          int
	HeaderSkipped     int
	ConversionDropped int
	ConversionErrors  int
}

// Parser binds CSV records to a typed handler. Build one with New1..New6 or
// NewRow. A Parser is not safe for concurrent use.
type Parser struct {
	cfg     config
	tok     *Tokenizer
	binder  *binder
	filters FilterChain
	policy  ErrorPolicy
	logger  *zap.Logger
	metrics *Metrics

	state  State
	status Status
	stats  Stats

	// row cursor
	line   int
	column int

	skipHeader  bool
	headerRow   bool
	convDropped bool

	bomActive  bool
	bomMatched int
}

func newParser(b *binder, opts []Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	policy := cfg.policy
	if policy == nil {
		policy = LogAndDrop(cfg.logger)
	}

	tok := NewTokenizer()
	tok.Comma = cfg.comma
	tok.Quote = cfg.quote

	p := &Parser{
		cfg:        cfg,
		tok:        tok,
		binder:     b,
		policy:     policy,
		logger:     logger,
		metrics:    cfg.metrics,
		status:     success,
		skipHeader: cfg.skipHeader,
	}
	for _, f := range cfg.filters {
		p.filters.Add(f)
	}
	if msg := cfg.validate(); msg != "" {
		p.fail(invalidStatus(msg))
	}
	return p
}

// Parse feeds chunk to the parser. Every record completed by chunk is
// dispatched to the handler before Parse returns. A record left open at the
// end of chunk is completed by a later Parse or by Finish.
func (p *Parser) Parse(chunk []byte) error {
	if p.state == Failed {
		return p.err()
	}
	if p.state != Streaming {
		p.startStream()
	}

	p.stats.Bytes += int64(len(chunk))
	if p.metrics != nil {
		p.metrics.Bytes.Add(float64(len(chunk)))
	}

	held, chunk := p.stripBOM(chunk)
	if len(held) > 0 {
		p.feed(held)
	}
	p.feed(chunk)
	return p.err()
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(s string) error {
	return p.Parse([]byte(s))
}

// Finish tells the parser no more input is coming for the current stream and
// dispatches any pending partial record. The parser may be fed again afterwards;
// the next Parse starts a new stream.
func (p *Parser) Finish() error {
	if p.state == Failed {
		return p.err()
	}
	if p.bomActive && p.bomMatched > 0 {
		p.feed(utf8BOM[:p.bomMatched])
	}
	p.bomActive = false

	if err := p.tok.Finish(events{p}); err != nil {
		p.fail(parseStatus(err))
	}
	if p.state == Failed {
		return p.err()
	}
	p.setState(Finished)
	return nil
}

// Status returns the sticky outcome of everything parsed so far.
func (p *Parser) Status() Status {
	return p.status
}

// OK reports whether no terminal error has occurred.
func (p *Parser) OK() bool {
	return p.status.OK()
}

// ErrorString returns the status message, "success" when no error occurred.
func (p *Parser) ErrorString() string {
	return p.status.Message
}

// State returns the lifecycle state.
func (p *Parser) State() State {
	return p.state
}

// Stats returns a snapshot of the parser counters.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Columns returns the number of declared columns.
func (p *Parser) Columns() int {
	return p.binder.width()
}

func (p *Parser) startStream() {
	p.bomActive = p.cfg.skipBOM
	p.bomMatched = 0
	p.setState(Streaming)
}

func (p *Parser) feed(b []byte) {
	if err := p.tok.Feed(b, events{p}); err != nil {
		p.fail(parseStatus(err))
	}
}

func (p *Parser) err() error {
	if p.status.OK() {
		return nil
	}
	return &StatusError{Status: p.status}
}

// fail records s unless an earlier failure was recorded; the first one wins.
func (p *Parser) fail(s Status) {
	if p.status.OK() {
		p.status = s
		if p.metrics != nil {
			p.metrics.Failures.WithLabelValues(strconv.Itoa(int(s.Code))).Inc()
		}
		p.logger.Debug("csvbind: parse failed",
			zap.Int("code", int(s.Code)),
			zap.String("message", s.Message),
			zap.Int("records", p.line),
		)
	}
	p.setState(Failed)
}

func (p *Parser) setState(s State) {
	if p.state == s {
		return
	}
	p.logger.Debug("csvbind: state change",
		zap.Stringer("from", p.state),
		zap.Stringer("to", s),
	)
	p.state = s
}

func (p *Parser) onField(field []byte) {
	if p.state == Failed {
		return
	}
	if p.column == 0 && p.skipHeader {
		p.skipHeader = false
		p.headerRow = true
		p.filters.Latch()
	}

	if p.filters.Evaluate(p.column, field) == Keep && p.column < p.binder.width() {
		if err := p.binder.bind(p.column, field); err != nil {
			p.conversionFailed(field, err)
		}
	}
	p.column++
}

func (p *Parser) conversionFailed(field []byte, err error) {
	p.stats.ConversionErrors++
	if p.metrics != nil {
		p.metrics.ConversionErrors.Inc()
	}

	cerr := &ConversionError{
		Row:    p.line + 1,
		Column: p.column,
		Name:   p.binder.name(p.column),
		Field:  string(field),
		Err:    err,
	}
	switch p.policy.OnConversionError(cerr) {
	case KeepDefault:
		p.binder.clear(p.column)
	case Abort:
		p.convDropped = true
		p.filters.Latch()
		p.fail(conversionStatus(cerr))
	default:
		p.convDropped = true
		p.filters.Latch()
	}
}

func (p *Parser) onRecord() {
	if p.state == Failed {
		return
	}
	p.line++
	p.stats.Records++

	outcome := OutcomeEmitted
	switch {
	case p.headerRow:
		p.stats.HeaderSkipped++
		outcome = OutcomeHeader
	case p.convDropped:
		p.stats.ConversionDropped++
		outcome = OutcomeConversion
	case p.filters.Dropped():
		p.stats.Filtered++
		outcome = OutcomeFiltered
	default:
		p.binder.emit()
		p.stats.Emitted++
	}
	if p.metrics != nil {
		p.metrics.Records.Inc()
		p.metrics.Rows.WithLabelValues(outcome).Inc()
	}

	p.column = 0
	p.headerRow = false
	p.convDropped = false
	p.filters.Reset()
	p.binder.reset()
}

// events adapts a Parser to EventHandler without exporting the callbacks.
type events struct {
	p *Parser
}

func (e events) OnField(field []byte, _ int) {
	e.p.onField(field)
}

func (e events) OnRecord() {
	e.p.onRecord()
}
