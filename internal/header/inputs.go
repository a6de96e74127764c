package header

import (
	"strings"
	"time"

	"github.com/jask/fireflytui/internal/nav"
	"github.com/jask/fireflytui/internal/store"
	"github.com/jask/fireflytui/internal/theme"
)

// ContainerKind classifies the navigation container the header sits in.
type ContainerKind int

const (
	ContainerOther ContainerKind = iota
	ContainerStack
)

// KindOf derives the container kind from a container key.
func KindOf(key string) ContainerKind {
	if strings.HasPrefix(key, nav.StackPrefix) {
		return ContainerStack
	}
	return ContainerOther
}

// Inputs is everything an Output depends on. Nothing else is read while
// building, so two equal Inputs always produce equivalent Outputs.
type Inputs struct {
	DepthIndex           int
	ContainerKind        ContainerKind
	CurrencyCode         string
	Title                string
	RangeMonths          int
	Start                time.Time
	End                  time.Time
	SelectedAccountCount int
	Colors               theme.Colors
}

// Select projects external state onto Inputs.
func Select(ns nav.State, st store.State, colors theme.Colors) Inputs {
	return Inputs{
		DepthIndex:           ns.Index,
		ContainerKind:        KindOf(ns.Key),
		CurrencyCode:         st.CurrencyCode,
		Title:                st.Range.Title,
		RangeMonths:          st.Range.Months,
		Start:                st.Range.Start,
		End:                  st.Range.End,
		SelectedAccountCount: len(st.SelectedAccountIDs),
		Colors:               colors,
	}
}

// Equal compares every field. Instants compare with time.Time.Equal so a
// change of location alone is not a change.
func (in Inputs) Equal(other Inputs) bool {
	return in.DepthIndex == other.DepthIndex &&
		in.ContainerKind == other.ContainerKind &&
		in.CurrencyCode == other.CurrencyCode &&
		in.Title == other.Title &&
		in.RangeMonths == other.RangeMonths &&
		in.Start.Equal(other.Start) &&
		in.End.Equal(other.End) &&
		in.SelectedAccountCount == other.SelectedAccountCount &&
		in.Colors == other.Colors
}
