package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jask/fireflytui/internal/nav"
	"github.com/jask/fireflytui/internal/store"
	"github.com/jask/fireflytui/internal/theme"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseInputs() Inputs {
	return Inputs{
		DepthIndex:    0,
		ContainerKind: ContainerStack,
		CurrencyCode:  "USD",
		Title:         "Q1 2024",
		RangeMonths:   3,
		Start:         day(2024, time.January, 1),
		End:           day(2024, time.March, 31),
		Colors:        theme.Mocha.Semantic(),
	}
}

func TestShouldRender(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.Int().Draw(t, "depth")
		want := depth == 0 || depth == 1
		if got := ShouldRender(depth); got != want {
			t.Fatalf("ShouldRender(%d) = %v, want %v", depth, got, want)
		}
	})
}

func TestBuildHidesHeaderBelowTopLevels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := baseInputs()
		in.DepthIndex = rapid.IntRange(2, 1<<20).Draw(t, "depth")
		if !NewBuilder(nil).Build(in).Empty() {
			t.Fatalf("depth %d rendered a header", in.DepthIndex)
		}
	})
}

func TestBuildShowsHeaderAtTopLevels(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{0, 1} {
		in := baseInputs()
		in.DepthIndex = depth
		out := NewBuilder(nil).Build(in)
		require.False(t, out.Empty(), "depth %d", depth)
		require.Equal(t, "Q1 2024", out.View.Title)
	}
}

func TestBuildReusesOutputForEqualInputs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := baseInputs()
		in.DepthIndex = rapid.IntRange(0, 4).Draw(t, "depth")
		in.SelectedAccountCount = rapid.IntRange(0, 20).Draw(t, "selected")
		in.CurrencyCode = rapid.SampledFrom([]string{"USD", "EUR", "AUD"}).Draw(t, "currency")

		b := NewBuilder(nil)
		first := b.Build(in)
		second := b.Build(in)
		if first != second {
			t.Fatalf("equal inputs built a new output")
		}
		if b.Builds() != 1 {
			t.Fatalf("builds = %d, want 1", b.Builds())
		}
	})
}

func TestBuildReusesAcrossEqualInstantsInOtherZones(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	in := baseInputs()
	first := b.Build(in)

	moved := in
	moved.Start = in.Start.In(time.FixedZone("UTC+10", 10*60*60))
	require.Same(t, first, b.Build(moved))
}

func TestBuildRebuildsOnAnySingleFieldChange(t *testing.T) {
	t.Parallel()

	changes := map[string]func(*Inputs){
		"depth":     func(in *Inputs) { in.DepthIndex = 1 },
		"container": func(in *Inputs) { in.ContainerKind = ContainerOther },
		"currency":  func(in *Inputs) { in.CurrencyCode = "EUR" },
		"title":     func(in *Inputs) { in.Title = "Q2 2024" },
		"months":    func(in *Inputs) { in.RangeMonths = 6 },
		"start":     func(in *Inputs) { in.Start = in.Start.AddDate(0, 0, 1) },
		"end":       func(in *Inputs) { in.End = in.End.AddDate(0, 0, -1) },
		"selected":  func(in *Inputs) { in.SelectedAccountCount = 4 },
		"colors":    func(in *Inputs) { in.Colors = theme.Latte.Semantic() },
	}
	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder(nil)
			in := baseInputs()
			first := b.Build(in)
			change(&in)
			second := b.Build(in)
			require.NotSame(t, first, second)
			require.Equal(t, 2, b.Builds())
			require.Same(t, second, b.Build(in))
		})
	}
}

func TestHiddenOutputIsCachedToo(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	in := baseInputs()
	in.DepthIndex = 3
	first := b.Build(in)
	require.True(t, first.Empty())
	require.Same(t, first, b.Build(in))
	require.Equal(t, 1, b.Builds())
}

func TestLeavingAndReturningDoesNotServeStaleHeader(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	in := baseInputs()
	visible := b.Build(in)
	require.Equal(t, "Q1 2024", visible.View.Title)

	in.DepthIndex = 2
	in.Title = "Q2 2024"
	require.True(t, b.Build(in).Empty())

	in.DepthIndex = 0
	back := b.Build(in)
	require.False(t, back.Empty())
	require.Equal(t, "Q2 2024", back.View.Title)
}

func TestBadges(t *testing.T) {
	t.Parallel()

	in := baseInputs()
	require.Equal(t, []string{"USD", "3M"}, NewBuilder(nil).Build(in).View.BadgeTexts())

	st := store.State{
		CurrencyCode:       "USD",
		Range:              store.RangeDetails{Title: "Q1 2024", Months: 3, Start: in.Start, End: in.End},
		SelectedAccountIDs: []string{"a", "b"},
	}
	out := NewBuilder(nil).Evaluate(nav.State{Index: 0, Key: "stack-1"}, st, in.Colors)
	require.Equal(t, []string{"USD", "3M", "+2"}, out.View.BadgeTexts())
}

func TestSubtitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		months int
		start  time.Time
		end    time.Time
		want   string
	}{
		{"single month", 1, day(2024, time.March, 5), day(2024, time.March, 11), "March 5 - 11"},
		{"quarter", 3, day(2024, time.January, 1), day(2024, time.March, 31), "January 1 - March 31"},
		{"year end instant", 12, day(2024, time.January, 1), day(2025, time.January, 1).Add(-time.Nanosecond), "January 1 - December 31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInputs()
			in.RangeMonths, in.Start, in.End = tc.months, tc.start, tc.end
			require.Equal(t, tc.want, NewBuilder(nil).Build(in).View.Subtitle)
		})
	}
}

func TestViewControlsAndContainer(t *testing.T) {
	t.Parallel()

	in := baseInputs()
	v := NewBuilder(nil).Build(in).View
	require.Equal(t, ActionShiftBack, v.Left.Action)
	require.Equal(t, ActionShiftForward, v.Right.Action)
	require.Equal(t, ActionOpenFilters, v.Filter.Action)
	require.True(t, v.Stack)

	in.ContainerKind = ContainerOther
	require.False(t, NewBuilder(nil).Build(in).View.Stack)
}
