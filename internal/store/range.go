package store

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnsupportedRange is returned for range widths other than 1, 3, 6 or 12 months.
	ErrUnsupportedRange = errors.New("unsupported range width")
	// ErrInvalidDirection is returned for shift directions other than -1, 0 or +1.
	ErrInvalidDirection = errors.New("invalid range direction")
)

// RangeWidths lists the supported window widths in months.
var RangeWidths = []int{1, 3, 6, 12}

// RangeDetails describes the active reporting window.
type RangeDetails struct {
	Title  string
	Months int
	Start  time.Time
	End    time.Time
}

// ValidRangeMonths reports whether months is a supported window width.
func ValidRangeMonths(months int) bool {
	for _, w := range RangeWidths {
		if w == months {
			return true
		}
	}
	return false
}

// NewRange returns the window of the given width that contains anchor.
// Windows are aligned to calendar blocks: quarters start in January, April,
// July and October; halves in January and July.
func NewRange(anchor time.Time, months int) (RangeDetails, error) {
	if !ValidRangeMonths(months) {
		return RangeDetails{}, fmt.Errorf("%w: %d", ErrUnsupportedRange, months)
	}
	block := (int(anchor.Month()) - 1) / months
	start := time.Date(anchor.Year(), time.Month(block*months+1), 1, 0, 0, 0, 0, anchor.Location())
	end := start.AddDate(0, months, 0).Add(-time.Nanosecond)
	return RangeDetails{
		Title:  rangeTitle(start, months, block),
		Months: months,
		Start:  start,
		End:    end,
	}, nil
}

// Shift moves the window by one width in direction. A zero direction
// realigns the window to now.
func (r RangeDetails) Shift(direction int, now time.Time) (RangeDetails, error) {
	switch direction {
	case -1, 1:
		return NewRange(r.Start.AddDate(0, direction*r.Months, 0), r.Months)
	case 0:
		return NewRange(now.In(r.Start.Location()), r.Months)
	default:
		return RangeDetails{}, fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}
}

// Contains reports whether t falls inside the window.
func (r RangeDetails) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func rangeTitle(start time.Time, months, block int) string {
	switch months {
	case 1:
		return start.Format("January 2006")
	case 3:
		return fmt.Sprintf("Q%d %d", block+1, start.Year())
	case 6:
		return fmt.Sprintf("H%d %d", block+1, start.Year())
	default:
		return fmt.Sprintf("%d", start.Year())
	}
}
