package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fireflytui/internal/theme"
)

type styles struct {
	app       lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	muted     lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	focused   lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
}

func newStyles(c theme.Colors) styles {
	return styles{
		app:       lipgloss.NewStyle().Foreground(c.Text).Padding(0, 1),
		heading:   lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		label:     lipgloss.NewStyle().Foreground(c.Muted),
		muted:     lipgloss.NewStyle().Foreground(c.Muted).Italic(true),
		cursor:    lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		selected:  lipgloss.NewStyle().Foreground(c.Accent),
		focused:   lipgloss.NewStyle().Foreground(c.Text).Background(c.TabBackground).Bold(true).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(c.Muted),
		statusErr: lipgloss.NewStyle().Foreground(c.Error).Bold(true),
	}
}
