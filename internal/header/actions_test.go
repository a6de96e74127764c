package header

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fireflytui/internal/feedback"
	"github.com/jask/fireflytui/internal/nav"
)

type recordingShifter struct{ directions []int }

func (r *recordingShifter) ShiftRange(direction int) { r.directions = append(r.directions, direction) }

type recordingNavigator struct {
	names []string
	err   error
}

func (r *recordingNavigator) Navigate(name string, params map[string]string) error {
	r.names = append(r.names, name)
	if params != nil {
		return errors.New("unexpected params")
	}
	return r.err
}

// blockingImpactor never finishes until release is closed.
type blockingImpactor struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingImpactor) Impact(ctx context.Context, _ feedback.Style) error {
	close(b.started)
	<-b.release
	return errors.New("no haptics here")
}

func TestShiftControlsRequestOneShiftEach(t *testing.T) {
	t.Parallel()

	shifter := &recordingShifter{}
	a := NewActions(context.Background(), shifter, &recordingNavigator{}, nil)

	a.ShiftBack()
	require.Equal(t, []int{-1}, shifter.directions)
	a.ShiftForward()
	require.Equal(t, []int{-1, 1}, shifter.directions)
}

func TestShiftDoesNotWaitForFeedback(t *testing.T) {
	t.Parallel()

	shifter := &recordingShifter{}
	imp := &blockingImpactor{started: make(chan struct{}), release: make(chan struct{})}
	a := NewActions(context.Background(), shifter, &recordingNavigator{}, imp)

	a.ShiftForward()
	require.Equal(t, []int{1}, shifter.directions)

	select {
	case <-imp.started:
	case <-time.After(2 * time.Second):
		t.Fatal("feedback was never requested")
	}
	close(imp.release)
}

func TestShiftSurvivesFailingFeedback(t *testing.T) {
	t.Parallel()

	shifter := &recordingShifter{}
	a := NewActions(context.Background(), shifter, &recordingNavigator{}, feedback.Nop{})
	a.ShiftBack()
	a.ShiftBack()
	require.Equal(t, []int{-1, -1}, shifter.directions)
}

func TestOpenFiltersNavigatesByName(t *testing.T) {
	t.Parallel()

	n := &recordingNavigator{}
	a := NewActions(context.Background(), &recordingShifter{}, n, nil)
	require.NoError(t, a.OpenFilters())
	require.Equal(t, []string{FiltersScreen}, n.names)

	n.err = nav.ErrUnknownRoute
	require.ErrorIs(t, a.OpenFilters(), nav.ErrUnknownRoute)
}

func TestPressDispatchesByControl(t *testing.T) {
	t.Parallel()

	shifter := &recordingShifter{}
	n := &recordingNavigator{}
	a := NewActions(context.Background(), shifter, n, nil)
	v := NewBuilder(nil).Build(baseInputs()).View

	require.NoError(t, a.Press(v.Left))
	require.NoError(t, a.Press(v.Right))
	require.NoError(t, a.Press(v.Filter))
	require.Equal(t, []int{-1, 1}, shifter.directions)
	require.Equal(t, []string{FiltersScreen}, n.names)
}

func TestActionsAgainstRealNavigator(t *testing.T) {
	t.Parallel()

	n := nav.NewStack("Home", FiltersScreen)
	a := NewActions(context.Background(), &recordingShifter{}, n, nil)
	require.NoError(t, a.OpenFilters())
	require.Equal(t, FiltersScreen, n.Current().Name)
	require.Equal(t, 1, n.State().Index)
}
