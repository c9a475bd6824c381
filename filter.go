package csvbind

import "bytes"

// Verdict is the outcome of a Filter.
type Verdict uint8

const (
	Keep Verdict = iota
	Drop
)

func (v Verdict) String() string {
	if v == Drop {
		return "drop"
	}
	return "keep"
}

// Filter inspects the raw bytes of one field and decides whether the row
// holding it is kept. Filters are called in field order, before conversion.
type Filter func(column int, field []byte) Verdict

// CommentPrefix returns a Filter dropping every row whose first field starts
// with prefix. An empty prefix returns nil.
func CommentPrefix(prefix string) Filter {
	if prefix == "" {
		return nil
	}
	p := []byte(prefix)
	return func(column int, field []byte) Verdict {
		if column == 0 && bytes.HasPrefix(field, p) {
			return Drop
		}
		return Keep
	}
}

// FilterChain ORs a list of filters together and latches the outcome for the
// current row: once any filter drops the row, it stays dropped until Reset.
type FilterChain struct {
	filters []Filter
	dropped bool
}

// Add appends f to the chain. A nil filter is ignored.
func (c *FilterChain) Add(f Filter) {
	if f != nil {
		c.filters = append(c.filters, f)
	}
}

// Len returns the number of filters in the chain.
func (c *FilterChain) Len() int {
	return len(c.filters)
}

// Evaluate runs the filters against one field of the current row.
func (c *FilterChain) Evaluate(column int, field []byte) Verdict {
	if c.dropped {
		return Drop
	}
	for _, f := range c.filters {
		if f(column, field) == Drop {
			c.dropped = true
			return Drop
		}
	}
	return Keep
}

// Latch marks the current row as dropped.
func (c *FilterChain) Latch() {
	c.dropped = true
}

// Dropped reports whether the current row has been dropped.
func (c *FilterChain) Dropped() bool {
	return c.dropped
}

// Reset starts a new row.
func (c *FilterChain) Reset() {
	c.dropped = false
}
