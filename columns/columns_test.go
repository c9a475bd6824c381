package columns

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/oleg578/csvbind"
)

func TestDecimal(t *testing.T) {
	t.Parallel()

	var got []decimal.Decimal
	p := csvbind.New1(Decimal(), func(d decimal.Decimal) {
		got = append(got, d)
	}, csvbind.WithErrorPolicy(csvbind.FailFast()))

	require.NoError(t, p.ParseString("0.1\n 12345678901234567890.25 \n-3\n"))
	require.NoError(t, p.Finish())
	require.Len(t, got, 3)
	require.True(t, got[0].Equal(decimal.RequireFromString("0.1")))
	require.Equal(t, "12345678901234567890.25", got[1].String())
	require.True(t, got[2].Equal(decimal.NewFromInt(-3)))
}

func TestDecimalRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decimal().Parse([]byte("1.2.3"))
	require.Error(t, err)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, err := UUID().Parse([]byte("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = UUID().Parse([]byte("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"))
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = UUID().Parse([]byte("not-a-uuid"))
	require.Error(t, err)
}

func TestTime(t *testing.T) {
	t.Parallel()

	got, err := Time().Parse([]byte("2024-03-01T10:20:30Z"))
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)))

	col := Time(time.DateTime, time.DateOnly)
	got, err = col.Parse([]byte("2024-03-01"))
	require.NoError(t, err)
	require.Equal(t, 2024, got.Year())

	_, err = col.Parse([]byte("yesterday"))
	require.Error(t, err)
}

func TestDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2/29/2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"29 Feb 2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"Feb 29, 2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"20240229", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"1/2/06", time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"1/2/99", time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := Date().Parse([]byte(tc.in))
		require.NoError(t, err, tc.in)
		require.True(t, tc.want.Equal(got), "%s: got %v", tc.in, got)
	}

	_, err := Date().Parse([]byte("31/31/2024"))
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	got, err := Duration().Parse([]byte("1m30s"))
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, got)
}

func TestColumnsThroughPolicy(t *testing.T) {
	t.Parallel()

	var ids []uuid.UUID
	p := csvbind.New2(csvbind.Int(), UUID(), func(_ int, id uuid.UUID) {
		ids = append(ids, id)
	}, csvbind.WithErrorPolicy(csvbind.KeepDefaults()))

	require.NoError(t, p.ParseString("1,6ba7b810-9dad-11d1-80b4-00c04fd430c8\n2,broken\n"))
	require.NoError(t, p.Finish())
	require.Len(t, ids, 2)
	require.NotEqual(t, uuid.Nil, ids[0])
	require.Equal(t, uuid.Nil, ids[1])
}
