// Package theme holds the color palettes and the semantic color set that
// screens and the header are styled with.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette is one Catppuccin flavor.
type Palette struct {
	Pink     lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Overlay1 lipgloss.Color
	Surface1 lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Crust    lipgloss.Color
}

var Mocha = Palette{
	Pink:     "#f5c2e7",
	Mauve:    "#cba6f7",
	Red:      "#f38ba8",
	Peach:    "#fab387",
	Yellow:   "#f9e2af",
	Green:    "#a6e3a1",
	Teal:     "#94e2d5",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay1: "#7f849c",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Crust:    "#11111b",
}

var Latte = Palette{
	Pink:     "#ea76cb",
	Mauve:    "#8839ef",
	Red:      "#d20f39",
	Peach:    "#fe640b",
	Yellow:   "#df8e1d",
	Green:    "#40a02b",
	Teal:     "#179299",
	Blue:     "#1e66f5",
	Lavender: "#7287fd",
	Text:     "#4c4f69",
	Subtext0: "#6c6f85",
	Overlay1: "#8c8fa1",
	Surface1: "#bcc0cc",
	Surface0: "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Crust:    "#dce0e8",
}

// ---------------------------------------------------------------------------
// Semantic colors
// ---------------------------------------------------------------------------

// Colors is the semantic color set. It is comparable so it can take part in
// equality checks of render inputs.
type Colors struct {
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Error          lipgloss.Color
	TabBackground  lipgloss.Color
	TileBackground lipgloss.Color
	BlurHeader     lipgloss.Color
}

// Semantic maps a palette onto Colors.
func (p Palette) Semantic() Colors {
	return Colors{
		Text:           p.Text,
		Muted:          p.Subtext0,
		Accent:         p.Pink,
		Error:          p.Red,
		TabBackground:  p.Surface0,
		TileBackground: p.Mantle,
		BlurHeader:     p.Crust,
	}
}

// HeaderBackground picks the header bar color for a container kind.
func (c Colors) HeaderBackground(stack bool) lipgloss.Color {
	if stack {
		return c.TileBackground
	}
	return c.BlurHeader
}

// Named returns the palette called name ("mocha" or "latte").
func Named(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mocha":
		return Mocha, nil
	case "latte":
		return Latte, nil
	default:
		return Palette{}, fmt.Errorf("unknown theme %q", name)
	}
}
