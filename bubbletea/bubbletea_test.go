package bubbletea_test

import (
	"bytes"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/dring"
	"github.com/fwojciec/dring/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// extractLastLine returns the last non-empty line from the output.
func extractLastLine(s string) string {
	lines := bytes.Split([]byte(s), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) > 0 {
			return string(lines[i])
		}
	}
	return ""
}

// newComparison builds a comparison of two in-memory files.
func newComparison(a, b []byte) *dring.Comparison {
	return dring.NewComparison(
		&dring.File{Path: "a.bin", Data: a},
		&dring.File{Path: "b.bin", Data: b},
	)
}

// keys converts s into key messages: single runes, or named keys such as
// "esc", "enter", "tab" when s is one of them.
func keys(s ...string) []tea.Msg {
	named := map[string]tea.KeyType{
		"esc":       tea.KeyEsc,
		"enter":     tea.KeyEnter,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+d":    tea.KeyCtrlD,
		"ctrl+u":    tea.KeyCtrlU,
		"backspace": tea.KeyBackspace,
	}
	var msgs []tea.Msg
	for _, k := range s {
		if t, ok := named[k]; ok {
			msgs = append(msgs, tea.KeyMsg{Type: t})
			continue
		}
		for _, r := range k {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return msgs
}

// update feeds msgs through the model in order and returns the result along
// with the command produced by the last message.
func update(t *testing.T, m bubbletea.Model, msgs ...tea.Msg) (bubbletea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(bubbletea.Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

// sized returns m after an 80x24 window size message.
func sized(t *testing.T, m bubbletea.Model) bubbletea.Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}
