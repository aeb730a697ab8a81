// Package lipgloss provides colour themes for rendering comparisons.
package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/dring"
	"github.com/lucasb-eyer/go-colorful"
)

// Compile-time interface verification.
var _ dring.Theme = (*Theme)(nil)

// Blend factors for highlight backgrounds mixed into the terminal background.
const (
	highlightBlend = 0.35
	statusBlend    = 0.15
)

// Theme derives the complete style set from a palette.
type Theme struct {
	palette dring.Palette
	styles  dring.Styles
}

// NewTheme builds a theme from p.
func NewTheme(p dring.Palette) *Theme {
	return &Theme{palette: p, styles: stylesFromPalette(p)}
}

// Palette returns the base colours of the theme.
func (t *Theme) Palette() dring.Palette {
	return t.palette
}

// Styles returns the derived styles.
func (t *Theme) Styles() dring.Styles {
	return t.styles
}

// DefaultTheme returns the theme for dark terminals.
func DefaultTheme() *Theme {
	return NewTheme(dring.Palette{
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Gray:       "#808080",
		Cyan:       "#56b6c2",
		Green:      "#98c379",
		Yellow:     "#e5c07b",
		Red:        "#e06c75",
		Blue:       "#61afef",
		Magenta:    "#c678dd",
	})
}

// LightTheme returns the theme for light terminals.
func LightTheme() *Theme {
	return NewTheme(dring.Palette{
		Background: "#ffffff",
		Foreground: "#24292f",
		Gray:       "#8c959f",
		Cyan:       "#0550ae",
		Green:      "#116329",
		Yellow:     "#953800",
		Red:        "#cf222e",
		Blue:       "#0969da",
		Magenta:    "#8250df",
	})
}

// TestTheme returns a theme of pure colours on black, so that blended values
// are easy to predict in tests. Red at 35% over black is "#590000".
func TestTheme() *Theme {
	return NewTheme(dring.Palette{
		Background: "#000000",
		Foreground: "#ffffff",
		Gray:       "#808080",
		Cyan:       "#00ffff",
		Green:      "#00ff00",
		Yellow:     "#ffff00",
		Red:        "#ff0000",
		Blue:       "#0000ff",
		Magenta:    "#ff00ff",
	})
}

// DetectTheme picks the dark or light theme from the terminal background.
func DetectTheme() *Theme {
	if lipgloss.HasDarkBackground() {
		return DefaultTheme()
	}
	return LightTheme()
}

// ThemeByName resolves a --theme flag value.
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "auto":
		return DetectTheme(), nil
	case "dark":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want auto, dark or light)", name)
	}
}

func stylesFromPalette(p dring.Palette) dring.Styles {
	return dring.Styles{
		Null:      dring.Style{Foreground: p.Gray},
		Printable: dring.Style{Foreground: p.Cyan},
		Control:   dring.Style{Foreground: p.Green},
		High:      dring.Style{Foreground: p.Yellow},
		Absent:    dring.Style{Foreground: p.Gray},

		Diff:         dring.Style{Background: blend(p.Background, p.Red, highlightBlend)},
		Match:        dring.Style{Background: blend(p.Background, p.Yellow, highlightBlend)},
		CurrentMatch: dring.Style{Foreground: p.Background, Background: p.Yellow, Bold: true},
		Selection:    dring.Style{Foreground: p.Foreground, Background: blend(p.Background, p.Blue, 0.5)},
		Cursor:       dring.Style{Reverse: true, Bold: true},

		Offset:    dring.Style{Foreground: p.Gray},
		Header:    dring.Style{Foreground: p.Foreground, Bold: true},
		Focused:   dring.Style{Foreground: p.Magenta, Bold: true},
		StatusBar: dring.Style{Foreground: p.Foreground, Background: blend(p.Background, p.Foreground, statusBlend)},
		Error:     dring.Style{Foreground: p.Red, Bold: true},
	}
}

// blend mixes accent into base. Invalid colours fall back to accent.
func blend(base, accent string, t float64) string {
	b, err := colorful.Hex(base)
	if err != nil {
		return accent
	}
	a, err := colorful.Hex(accent)
	if err != nil {
		return accent
	}
	return b.BlendRgb(a, t).Clamped().Hex()
}
