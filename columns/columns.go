package columns

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/oleg578/csvbind"
)

// TwoDigitYearPivot defines how 2-digit years are interpreted by Date and PgDate.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// Decimal binds an arbitrary-precision decimal.
func Decimal() csvbind.Column[decimal.Decimal] {
	return csvbind.Custom("decimal", func(b []byte) (decimal.Decimal, error) {
		return decimal.NewFromString(string(bytes.TrimSpace(b)))
	})
}

// UUID binds a UUID in any form accepted by uuid.ParseBytes.
func UUID() csvbind.Column[uuid.UUID] {
	return csvbind.Custom("uuid", func(b []byte) (uuid.UUID, error) {
		return uuid.ParseBytes(bytes.TrimSpace(b))
	})
}

// Time binds a timestamp matching the first of layouts that parses.
// Without layouts, RFC 3339 is used.
func Time(layouts ...string) csvbind.Column[time.Time] {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339Nano}
	}
	return csvbind.Custom("time", func(b []byte) (time.Time, error) {
		s := string(bytes.TrimSpace(b))
		var firstErr error
		for _, layout := range layouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return time.Time{}, firstErr
	})
}

// Date binds a calendar date written in one of the common US, EU or ISO
// layouts. Two-digit years are resolved with TwoDigitYearPivot.
func Date() csvbind.Column[time.Time] {
	return csvbind.Custom("date", func(b []byte) (time.Time, error) {
		return parseDate(string(bytes.TrimSpace(b)))
	})
}

// Duration binds a value accepted by time.ParseDuration.
func Duration() csvbind.Column[time.Duration] {
	return csvbind.Custom("duration", func(b []byte) (time.Duration, error) {
		return time.ParseDuration(string(bytes.TrimSpace(b)))
	})
}

func parseDate(s string) (time.Time, error) {
	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date %q", s)
}
