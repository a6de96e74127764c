package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// span is the column range [from, to) a control occupies in a drawn header.
type span struct {
	from, to int
	control  Control
}

// drawing is a laid out header: its text, its height and where its controls are.
type drawing struct {
	text   string
	height int
	spans  []span
}

// Render draws v as a full-width bar. A hidden header renders as "".
func Render(out *Output, width int) string {
	return draw(out, width).text
}

// draw lays out the header. Text that does not fit is cut with an ellipsis
// rather than wrapped, so the bar never grows taller than three rows and no
// row is wider than width.
func draw(out *Output, width int) drawing {
	if out.Empty() || width <= 0 {
		return drawing{}
	}
	v := out.View
	bg := v.Colors.HeaderBackground(v.Stack)

	control := lipgloss.NewStyle().
		Foreground(v.Colors.Accent).
		Background(bg).
		Bold(true).
		Padding(0, 1)
	title := lipgloss.NewStyle().Foreground(v.Colors.Text).Background(bg).Bold(true)
	subtitle := lipgloss.NewStyle().Foreground(v.Colors.Muted).Background(bg)
	badge := lipgloss.NewStyle().
		Foreground(v.Colors.Text).
		Background(v.Colors.TabBackground).
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		MarginBackground(bg)

	left := control.Render(v.Left.Label)
	filter := control.Render(v.Filter.Label)
	right := control.Render(v.Right.Label)
	lw, fw, rw := lipgloss.Width(left), lipgloss.Width(filter), lipgloss.Width(right)

	middleWidth := max(width-lw-fw-rw, 0)
	parts := []string{left}
	if middleWidth > 0 {
		m := middle(v, bg, middleWidth, title, subtitle, badge)
		middleWidth = lipgloss.Width(m)
		parts = append(parts, m)
	}
	parts = append(parts, filter, right)
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	text := lipgloss.NewStyle().Background(bg).Width(width).Render(strings.Join(lines, "\n"))

	d := drawing{text: text, height: lipgloss.Height(text)}
	x := 0
	for _, c := range []struct {
		w       int
		control *Control
	}{{lw, &v.Left}, {middleWidth, nil}, {fw, &v.Filter}, {rw, &v.Right}} {
		from, to := x, min(x+c.w, width)
		x += c.w
		if c.control == nil || from >= to {
			continue
		}
		d.spans = append(d.spans, span{from: from, to: to, control: *c.control})
	}
	return d
}

// middle renders the title column at exactly w cells.
func middle(v *View, bg lipgloss.Color, w int, title, subtitle, badge lipgloss.Style) string {
	inner := w - 2
	if inner < 1 {
		blank := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", w))
		return strings.Join([]string{blank, blank, blank}, "\n")
	}
	pills := make([]string, 0, len(v.Badges))
	for _, b := range v.Badges {
		pills = append(pills, badge.Render(b.Text))
	}
	return lipgloss.NewStyle().
		Background(bg).
		Width(w).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title.Render(ansi.Truncate(v.Title, inner, ellipsis)),
			subtitle.Render(ansi.Truncate(v.Subtitle, inner, ellipsis)),
			ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, pills...), inner, ""),
		))
}

// Renderer caches the drawn header for the last Output and width, so an
// unchanged Output is never laid out twice.
type Renderer struct {
	out     *Output
	width   int
	drawing drawing
	valid   bool
}

func (r *Renderer) layout(out *Output, width int) drawing {
	if !r.valid || r.out != out || r.width != width {
		r.out, r.width, r.drawing, r.valid = out, width, draw(out, width), true
	}
	return r.drawing
}

// Render returns the drawn header, reusing the previous text when out is the
// same Output and width has not changed.
func (r *Renderer) Render(out *Output, width int) string {
	return r.layout(out, width).text
}

// HitTest maps a click at column x, row y of the header drawn for out at
// width to the control under it. It reads the cached layout.
func (r *Renderer) HitTest(out *Output, width, x, y int) (Control, bool) {
	d := r.layout(out, width)
	if y < 0 || y >= d.height {
		return Control{}, false
	}
	for _, s := range d.spans {
		if x >= s.from && x < s.to {
			return s.control, true
		}
	}
	return Control{}, false
}
