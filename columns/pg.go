package columns

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"

	"github.com/oleg578/csvbind"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// PgText binds trimmed text; blank fields are NULL.
func PgText() csvbind.Column[pgtype.Text] {
	return csvbind.Custom("pg_text", func(b []byte) (pgtype.Text, error) {
		s := strings.TrimSpace(string(b))
		if s == "" {
			return pgtype.Text{}, nil
		}
		return pgtype.Text{String: s, Valid: true}, nil
	})
}

// PgDate binds a date using the layouts of Date; blank fields are NULL.
func PgDate() csvbind.Column[pgtype.Date] {
	return csvbind.Custom("pg_date", func(b []byte) (pgtype.Date, error) {
		s := string(bytes.TrimSpace(b))
		if s == "" {
			return pgtype.Date{}, nil
		}
		t, err := parseDate(s)
		if err != nil {
			return pgtype.Date{}, err
		}
		return pgtype.Date{Time: t, Valid: true}, nil
	})
}

// PgNumeric binds a number as exported by spreadsheets and accounting tools:
// currency symbols and thousands separators are removed and "(123.45)" is
// read as negative. Blank fields are NULL.
func PgNumeric() csvbind.Column[pgtype.Numeric] {
	return csvbind.Custom("pg_numeric", func(b []byte) (pgtype.Numeric, error) {
		s := strings.TrimSpace(string(b))
		if s == "" {
			return pgtype.Numeric{}, nil
		}

		s = normalizeNumeric(s)
		if !numericRegex.MatchString(s) {
			return pgtype.Numeric{}, errors.Errorf("invalid numeric %q", string(b))
		}

		var n pgtype.Numeric
		if err := n.Scan(s); err != nil {
			return pgtype.Numeric{}, errors.Wrapf(err, "invalid numeric %q", string(b))
		}
		return n, nil
	})
}

func normalizeNumeric(s string) string {
	// Detect negative accounting format "(123.45)"
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		s = "-" + s
	}
	return s
}

// PgBool binds true/false, yes/no, t/f, y/n and 1/0 in any case; blank
// fields are NULL.
func PgBool() csvbind.Column[pgtype.Bool] {
	return csvbind.Custom("pg_bool", func(b []byte) (pgtype.Bool, error) {
		s := strings.ToLower(strings.TrimSpace(string(b)))
		switch s {
		case "":
			return pgtype.Bool{}, nil
		case "true", "t", "yes", "y", "1":
			return pgtype.Bool{Bool: true, Valid: true}, nil
		case "false", "f", "no", "n", "0":
			return pgtype.Bool{Bool: false, Valid: true}, nil
		}
		return pgtype.Bool{}, errors.Errorf("invalid bool %q", string(b))
	})
}

// PgUUID binds a UUID; blank fields are NULL.
func PgUUID() csvbind.Column[pgtype.UUID] {
	return csvbind.Custom("pg_uuid", func(b []byte) (pgtype.UUID, error) {
		b = bytes.TrimSpace(b)
		if len(b) == 0 {
			return pgtype.UUID{}, nil
		}
		parsed, err := uuid.ParseBytes(b)
		if err != nil {
			return pgtype.UUID{}, err
		}
		return pgtype.UUID{Bytes: parsed, Valid: true}, nil
	})
}
