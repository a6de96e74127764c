package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRangeAlignsToCalendarBlocks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		anchor    time.Time
		months    int
		wantStart time.Time
		wantLast  time.Time
		wantTitle string
	}{
		{"month", date(2024, time.February, 15), 1, date(2024, time.February, 1), date(2024, time.February, 29), "February 2024"},
		{"quarter", date(2024, time.May, 10), 3, date(2024, time.April, 1), date(2024, time.June, 30), "Q2 2024"},
		{"half", date(2024, time.August, 1), 6, date(2024, time.July, 1), date(2024, time.December, 31), "H2 2024"},
		{"year", date(2024, time.November, 30), 12, date(2024, time.January, 1), date(2024, time.December, 31), "2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRange(tc.anchor, tc.months)
			require.NoError(t, err)
			require.Equal(t, tc.months, r.Months)
			require.True(t, r.Start.Equal(tc.wantStart), "start = %s", r.Start)
			require.Equal(t, tc.wantLast.Format("2006-01-02"), r.End.Format("2006-01-02"))
			require.True(t, r.End.Before(tc.wantLast.AddDate(0, 0, 1)))
			require.Equal(t, tc.wantTitle, r.Title)
			require.True(t, r.Contains(tc.anchor))
		})
	}
}

func TestNewRangeRejectsUnsupportedWidth(t *testing.T) {
	t.Parallel()

	_, err := NewRange(date(2024, time.March, 1), 2)
	require.ErrorIs(t, err, ErrUnsupportedRange)
	_, err = NewRange(date(2024, time.March, 1), 0)
	require.ErrorIs(t, err, ErrUnsupportedRange)
}

func TestShiftCrossesYearBoundaries(t *testing.T) {
	t.Parallel()

	jan, err := NewRange(date(2024, time.January, 20), 1)
	require.NoError(t, err)
	dec, err := jan.Shift(-1, time.Time{})
	require.NoError(t, err)
	require.Equal(t, "December 2023", dec.Title)
	require.True(t, dec.Start.Equal(date(2023, time.December, 1)))

	q4, err := NewRange(date(2024, time.October, 2), 3)
	require.NoError(t, err)
	q1, err := q4.Shift(1, time.Time{})
	require.NoError(t, err)
	require.Equal(t, "Q1 2025", q1.Title)
	require.True(t, q1.Start.Equal(date(2025, time.January, 1)))

	back, err := q1.Shift(-1, time.Time{})
	require.NoError(t, err)
	require.Equal(t, q4, back)
}

func TestShiftZeroResetsToNow(t *testing.T) {
	t.Parallel()

	old, err := NewRange(date(2020, time.June, 1), 6)
	require.NoError(t, err)
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)
	r, err := old.Shift(0, now)
	require.NoError(t, err)
	require.Equal(t, "H2 2026", r.Title)
	require.True(t, r.Contains(now))
}

func TestShiftRejectsInvalidDirection(t *testing.T) {
	t.Parallel()

	r, err := NewRange(date(2024, time.March, 1), 1)
	require.NoError(t, err)
	_, err = r.Shift(2, time.Time{})
	require.ErrorIs(t, err, ErrInvalidDirection)
}
