package header

import "github.com/jask/fireflytui/internal/theme"

// Action identifies what a control does when pressed.
type Action int

const (
	ActionShiftBack Action = iota
	ActionShiftForward
	ActionOpenFilters
)

// Control is one pressable element of the header.
type Control struct {
	Label  string
	Action Action
}

// Badge is a small marker summarizing one active filter.
type Badge struct {
	Text string
}

// View is the visible header.
type View struct {
	Title    string
	Subtitle string
	Badges   []Badge
	Left     Control
	Right    Control
	Filter   Control
	Stack    bool
	Colors   theme.Colors
}

// Output is the result of one evaluation. A nil View means the header is
// hidden.
type Output struct {
	View *View
}

// Empty reports whether the header is hidden.
func (o *Output) Empty() bool {
	return o == nil || o.View == nil
}

// BadgeTexts returns the badge labels in display order.
func (v *View) BadgeTexts() []string {
	out := make([]string, 0, len(v.Badges))
	for _, b := range v.Badges {
		out = append(out, b.Text)
	}
	return out
}
