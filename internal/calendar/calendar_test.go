package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMomentFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		pattern string
		want    string
	}{
		{"MMMM D", "March 5"},
		{"D", "5"},
		{"DD/MM/YY", "05/03/24"},
		{"YYYY-MM-DD", "2024-03-05"},
		{"MMM D, YYYY", "Mar 5, 2024"},
		{"dddd", "Tuesday"},
		{"ddd M", "Tue 3"},
		{"Q1 2", "Q1 2"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Moment{}.Format(ts, tc.pattern), "pattern %q", tc.pattern)
	}
}

func TestMomentFormatUsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "March 31", Moment{}.Format(ts, "MMMM D"))
	require.Equal(t, "April 1", Moment{Location: loc}.Format(ts, "MMMM D"))
}
