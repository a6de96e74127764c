package theme

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestSemanticColorsAreHex(t *testing.T) {
	t.Parallel()

	for _, p := range []Palette{Mocha, Latte} {
		c := p.Semantic()
		for _, col := range []lipgloss.Color{c.Text, c.Muted, c.Accent, c.Error, c.TabBackground, c.TileBackground, c.BlurHeader} {
			require.Regexp(t, hexColor, string(col))
		}
	}
}

func TestHeaderBackgroundDependsOnContainer(t *testing.T) {
	t.Parallel()

	c := Mocha.Semantic()
	require.Equal(t, c.TileBackground, c.HeaderBackground(true))
	require.Equal(t, c.BlurHeader, c.HeaderBackground(false))
}

func TestNamed(t *testing.T) {
	t.Parallel()

	p, err := Named("Latte")
	require.NoError(t, err)
	require.Equal(t, Latte, p)

	p, err = Named("")
	require.NoError(t, err)
	require.Equal(t, Mocha, p)

	_, err = Named("frappe")
	require.Error(t, err)
	require.NotEqual(t, Mocha.Semantic(), Latte.Semantic())
}
