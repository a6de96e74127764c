package header

import (
	"context"
	"fmt"

	"github.com/jask/fireflytui/internal/feedback"
)

// FiltersScreen is the route opened by the filter control.
const FiltersScreen = "FiltersScreen"

// RangeShifter moves the active range by one width.
type RangeShifter interface {
	ShiftRange(direction int)
}

// Navigator opens a screen by name.
type Navigator interface {
	Navigate(name string, params map[string]string) error
}

// Actions carries out control presses.
type Actions struct {
	ctx      context.Context
	ranges   RangeShifter
	nav      Navigator
	feedback feedback.Impactor
}

// NewActions wires the collaborators. A nil impactor disables feedback.
func NewActions(ctx context.Context, ranges RangeShifter, nav Navigator, impactor feedback.Impactor) *Actions {
	if impactor == nil {
		impactor = feedback.Nop{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Actions{ctx: ctx, ranges: ranges, nav: nav, feedback: impactor}
}

// ShiftBack moves the range one width into the past.
func (a *Actions) ShiftBack() {
	a.shift(-1)
}

// ShiftForward moves the range one width into the future.
func (a *Actions) ShiftForward() {
	a.shift(1)
}

// OpenFilters navigates to the filter screen.
func (a *Actions) OpenFilters() error {
	if err := a.nav.Navigate(FiltersScreen, nil); err != nil {
		return fmt.Errorf("open filters: %w", err)
	}
	return nil
}

// Press runs the action bound to c.
func (a *Actions) Press(c Control) error {
	switch c.Action {
	case ActionShiftBack:
		a.ShiftBack()
	case ActionShiftForward:
		a.ShiftForward()
	case ActionOpenFilters:
		return a.OpenFilters()
	}
	return nil
}

func (a *Actions) shift(direction int) {
	impactor, ctx := a.feedback, a.ctx
	go func() {
		_ = impactor.Impact(ctx, feedback.Light)
	}()
	a.ranges.ShiftRange(direction)
}
