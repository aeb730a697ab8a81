package bubbletea

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/dring"
)

const (
	numClasses    = int(dring.ClassAbsent) + 1
	numHighlights = int(dring.HighlightCursor) + 1
)

// styleTable holds a lipgloss style for every (class, highlight) pair plus
// the chrome styles, built once per model.
type styleTable struct {
	cells     [numClasses][numHighlights]lipgloss.Style
	offset    lipgloss.Style
	header    lipgloss.Style
	focused   lipgloss.Style
	statusBar lipgloss.Style
	errorText lipgloss.Style
}

func newStyleTable(r *lipgloss.Renderer, s dring.Styles) styleTable {
	var t styleTable
	for c := range numClasses {
		for h := range numHighlights {
			t.cells[c][h] = toLipgloss(r, s.Cell(dring.ByteClass(c), dring.Highlight(h)))
		}
	}
	t.offset = toLipgloss(r, s.Offset)
	t.header = toLipgloss(r, s.Header)
	t.focused = toLipgloss(r, s.Focused)
	t.statusBar = toLipgloss(r, s.StatusBar)
	t.errorText = toLipgloss(r, s.Error)
	return t
}

func (t *styleTable) cell(c dring.ByteClass, h dring.Highlight) lipgloss.Style {
	return t.cells[c][h]
}

// toLipgloss converts a terminal-agnostic style into a lipgloss style bound
// to renderer r.
func toLipgloss(r *lipgloss.Renderer, s dring.Style) lipgloss.Style {
	st := r.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

func newSearchInput(r *lipgloss.Renderer, s dring.Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = searchPrompt(dring.SearchHex)
	ti.PromptStyle = toLipgloss(r, s.Focused)
	ti.TextStyle = toLipgloss(r, s.Printable)
	ti.Placeholder = "pattern"
	return ti
}

func searchPrompt(kind dring.SearchKind) string {
	if kind == dring.SearchASCII {
		return "ascii ?"
	}
	return "hex /"
}

func newHelp(r *lipgloss.Renderer, p dring.Palette) help.Model {
	h := help.New()
	h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color(p.Foreground)).Bold(true)
	h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color(p.Gray))
	h.Styles.ShortSeparator = r.NewStyle().Foreground(lipgloss.Color(p.Gray))
	h.Styles.Ellipsis = r.NewStyle().Foreground(lipgloss.Color(p.Gray))
	return h
}
