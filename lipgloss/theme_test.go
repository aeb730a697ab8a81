package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/dring"
	"github.com/fwojciec/dring/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestTheme_BlendsHighlights(t *testing.T) {
	t.Parallel()

	styles := lipgloss.TestTheme().Styles()

	assert.Equal(t, "#590000", styles.Diff.Background, "red at 35% over black")
	assert.Equal(t, "#595900", styles.Match.Background, "yellow at 35% over black")
	assert.Equal(t, "#000080", styles.Selection.Background, "blue at 50% over black")
	assert.Equal(t, "#262626", styles.StatusBar.Background, "white at 15% over black")
}

func TestTheme_ClassColours(t *testing.T) {
	t.Parallel()

	theme := lipgloss.TestTheme()
	p := theme.Palette()
	styles := theme.Styles()

	assert.Equal(t, p.Gray, styles.Class(dring.ClassNull).Foreground)
	assert.Equal(t, p.Cyan, styles.Class(dring.ClassPrintable).Foreground)
	assert.Equal(t, p.Green, styles.Class(dring.ClassControl).Foreground)
	assert.Equal(t, p.Yellow, styles.Class(dring.ClassHigh).Foreground)
	assert.Equal(t, p.Gray, styles.Offset.Foreground)
}

func TestTheme_OverlaysAreDistinct(t *testing.T) {
	t.Parallel()

	for name, theme := range map[string]*lipgloss.Theme{
		"default": lipgloss.DefaultTheme(),
		"light":   lipgloss.LightTheme(),
		"test":    lipgloss.TestTheme(),
	} {
		styles := theme.Styles()
		seen := map[dring.Style]dring.Highlight{}
		for h := dring.HighlightDiff; h <= dring.HighlightCursor; h++ {
			st := styles.Overlay(h)
			prev, dup := seen[st]
			assert.False(t, dup, "%s: highlight %d duplicates %d", name, h, prev)
			seen[st] = h
		}
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := lipgloss.ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.DefaultTheme().Palette(), dark.Palette())

	light, err := lipgloss.ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.LightTheme().Palette(), light.Palette())

	_, err = lipgloss.ThemeByName("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solarized")
}
