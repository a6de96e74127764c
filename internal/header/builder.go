package header

import (
	"strconv"

	"github.com/jask/fireflytui/internal/calendar"
	"github.com/jask/fireflytui/internal/nav"
	"github.com/jask/fireflytui/internal/store"
	"github.com/jask/fireflytui/internal/theme"
)

const (
	startPattern    = "MMMM D"
	sameMonthEnd    = "D"
	otherMonthEnd   = "MMMM D"
	subtitleDivider = " - "
)

// Builder produces header Outputs and keeps the last one for reuse.
type Builder struct {
	cal calendar.Formatter

	primed  bool
	lastKey Inputs
	last    *Output
	builds  int
}

// NewBuilder returns a Builder formatting dates with cal. A nil cal uses
// calendar.Moment.
func NewBuilder(cal calendar.Formatter) *Builder {
	if cal == nil {
		cal = calendar.Moment{}
	}
	return &Builder{cal: cal}
}

// Evaluate selects the inputs from external state and builds from them.
func (b *Builder) Evaluate(ns nav.State, st store.State, colors theme.Colors) *Output {
	return b.Build(Select(ns, st, colors))
}

// Build returns the cached Output when in equals the previous inputs and
// builds a new one otherwise.
func (b *Builder) Build(in Inputs) *Output {
	if b.primed && in.Equal(b.lastKey) {
		return b.last
	}
	out := &Output{}
	if ShouldRender(in.DepthIndex) {
		out.View = b.view(in)
	}
	b.primed = true
	b.lastKey = in
	b.last = out
	b.builds++
	return out
}

// Builds returns how many Outputs have been built so far.
func (b *Builder) Builds() int {
	return b.builds
}

func (b *Builder) view(in Inputs) *View {
	return &View{
		Title:    in.Title,
		Subtitle: b.subtitle(in),
		Badges:   badges(in),
		Left:     Control{Label: "‹", Action: ActionShiftBack},
		Right:    Control{Label: "›", Action: ActionShiftForward},
		Filter:   Control{Label: "≡", Action: ActionOpenFilters},
		Stack:    in.ContainerKind == ContainerStack,
		Colors:   in.Colors,
	}
}

func (b *Builder) subtitle(in Inputs) string {
	endPattern := otherMonthEnd
	if in.RangeMonths == 1 {
		endPattern = sameMonthEnd
	}
	return b.cal.Format(in.Start, startPattern) + subtitleDivider + b.cal.Format(in.End, endPattern)
}

func badges(in Inputs) []Badge {
	out := []Badge{
		{Text: in.CurrencyCode},
		{Text: strconv.Itoa(in.RangeMonths) + "M"},
	}
	if in.SelectedAccountCount > 0 {
		out = append(out, Badge{Text: "+" + strconv.Itoa(in.SelectedAccountCount)})
	}
	return out
}
