// Package bubbletea implements the interactive comparison view on top of the
// Bubble Tea framework.
package bubbletea

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/dring"
	dl "github.com/fwojciec/dring/lipgloss"
)

// Model is the Bubble Tea model for comparing two files.
type Model struct {
	cmp       *dring.Comparison
	keys      KeyMap
	theme     dring.Theme
	renderer  *lipgloss.Renderer
	styles    styleTable
	clipboard dring.Clipboard
	fixedBPR  int

	// Terminal geometry.
	width       int
	height      int
	ready       bool
	bytesPerRow int
	top         int // first visible row

	mode      dring.Mode
	focus     dring.Side
	cursor    int
	matches   dring.Matches
	selection dring.Selection
	input     textinput.Model
	inputErr  error
	message   string
	isError   bool
	help      help.Model
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme used for rendering.
func WithTheme(t dring.Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// WithRenderer sets the lipgloss renderer used to build styles. Tests use it
// to force a colour profile without touching global state.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithClipboard sets where exported selections are sent.
func WithClipboard(c dring.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithBytesPerRow fixes the number of bytes per row instead of deriving it
// from the terminal width.
func WithBytesPerRow(n int) Option {
	return func(m *Model) {
		m.fixedBPR = n
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a Model for the given comparison.
func NewModel(cmp *dring.Comparison, opts ...Option) Model {
	m := Model{
		cmp:         cmp,
		keys:        DefaultKeyMap(),
		bytesPerRow: defaultBytesPerRow,
		mode:        dring.ModeNormal,
		focus:       dring.SideA,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = dl.DefaultTheme()
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	if m.fixedBPR > 0 {
		m.bytesPerRow = m.fixedBPR
	}
	m.styles = newStyleTable(m.renderer, m.theme.Styles())
	m.input = newSearchInput(m.renderer, m.theme.Styles())
	m.help = newHelp(m.renderer, m.theme.Palette())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case copiedMsg:
		m.handleCopied(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.mode.IsSearch():
			return m.updateSearch(msg)
		case m.mode == dring.ModeVisual:
			return m.updateVisual(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	if m.mode.IsSearch() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearMessage()
	if m.handleMove(msg) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SearchHex):
		cmd := m.enterSearch(dring.SearchHex)
		return m, cmd
	case key.Matches(msg, m.keys.SearchASCII):
		cmd := m.enterSearch(dring.SearchASCII)
		return m, cmd
	case key.Matches(msg, m.keys.NextMatch):
		m.gotoMatch(m.matches.Next)
	case key.Matches(msg, m.keys.PrevMatch):
		m.gotoMatch(m.matches.Prev)
	case key.Matches(msg, m.keys.Visual):
		if m.cmp.Len() == 0 {
			m.setError("nothing to select")
			break
		}
		m.mode = dring.ModeVisual
		m.matches = dring.Matches{}
		m.selection = dring.Selection{Anchor: m.cursor, Cursor: m.cursor}
	case key.Matches(msg, m.keys.SwitchFile):
		m.focus = m.focus.Other()
	case key.Matches(msg, m.keys.Cancel):
		m.matches = dring.Matches{}
	}
	return m, nil
}

func (m Model) updateVisual(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearMessage()
	if m.handleMove(msg) {
		m.selection.Cursor = m.cursor
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Visual):
		m.mode = dring.ModeNormal
		m.selection = dring.Selection{}
	case key.Matches(msg, m.keys.CopyHex):
		cmd := m.copySelection(dring.ExportHex)
		return m, cmd
	case key.Matches(msg, m.keys.CopyASCII):
		cmd := m.copySelection(dring.ExportASCII)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.matches = dring.Matches{}
		m.leaveSearch()
		return m, nil
	case key.Matches(msg, m.keys.ToggleKind):
		m.mode = dring.SearchMode(m.mode.SearchKind().Toggle())
		m.input.Reset()
		m.input.Prompt = searchPrompt(m.mode.SearchKind())
		m.inputErr = nil
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitSearch()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inputErr = nil
	return m, cmd
}

// handleMove applies a movement binding and reports whether msg was one.
func (m *Model) handleMove(msg tea.KeyMsg) bool {
	bpr := m.bytesPerRow
	half := max(m.visibleRows()/2, 1) * bpr
	page := m.visibleRows() * bpr
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - bpr)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + bpr)
	case key.Matches(msg, m.keys.RowStart):
		m.moveTo(m.cursor - m.cursor%bpr)
	case key.Matches(msg, m.keys.RowEnd):
		m.moveTo(m.cursor - m.cursor%bpr + bpr - 1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveTo(m.cursor - half)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveTo(m.cursor + half)
	case key.Matches(msg, m.keys.PageUp):
		m.moveTo(m.cursor - page)
	case key.Matches(msg, m.keys.PageDown):
		m.moveTo(m.cursor + page)
	case key.Matches(msg, m.keys.Top):
		m.moveTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveTo(m.lastOffset())
	case key.Matches(msg, m.keys.NextDiff):
		if off, ok := m.cmp.Diff.Next(m.cursor); ok {
			m.moveTo(off)
		} else {
			m.setError("no more differences")
		}
	case key.Matches(msg, m.keys.PrevDiff):
		if off, ok := m.cmp.Diff.Prev(m.cursor); ok {
			m.moveTo(off)
		} else {
			m.setError("no previous difference")
		}
	default:
		return false
	}
	return true
}

// moveTo places the cursor at off, clamped to the comparison, and scrolls
// it into view.
func (m *Model) moveTo(off int) {
	m.cursor = max(0, min(off, m.lastOffset()))
	m.scrollToCursor()
}

func (m *Model) lastOffset() int {
	return max(m.cmp.Len()-1, 0)
}

// enterSearch opens the prompt. Matches from an earlier search are dropped.
func (m *Model) enterSearch(kind dring.SearchKind) tea.Cmd {
	m.mode = dring.SearchMode(kind)
	m.matches = dring.Matches{}
	m.inputErr = nil
	m.input.Reset()
	m.input.Prompt = searchPrompt(kind)
	return m.input.Focus()
}

func (m *Model) leaveSearch() {
	m.mode = dring.ModeNormal
	m.inputErr = nil
	m.input.Reset()
	m.input.Blur()
}

// submitSearch parses the prompt and replaces the match list. A malformed
// pattern keeps the prompt open and the previous matches intact.
func (m *Model) submitSearch() {
	kind := m.mode.SearchKind()
	p, err := dring.ParsePattern(kind, m.input.Value())
	if err != nil {
		m.inputErr = err
		return
	}
	m.matches = dring.NewMatches(m.cmp.File(m.focus), m.focus, p)
	m.leaveSearch()
	if p.Len() == 0 {
		return
	}
	log.Printf("search %s %s in %s: %d matches", kind, p.Describe(), m.focus, m.matches.Len())
	if _, off, ok := m.matches.Current(); ok {
		m.moveTo(off)
		return
	}
	m.setError("pattern not found: " + p.Describe())
}

func (m *Model) gotoMatch(step func() (int, bool)) {
	off, ok := step()
	if !ok {
		m.setError("no matches")
		return
	}
	m.moveTo(off)
}

func (m *Model) copySelection(format dring.ExportFormat) tea.Cmd {
	start, end := m.selection.Range()
	text := dring.Export(m.cmp.File(m.focus), start, end, format)
	if text == "" {
		m.setError("nothing to copy from " + m.focus.String())
		return nil
	}
	if m.clipboard == nil {
		m.setError("clipboard unavailable")
		return nil
	}
	n := len(m.cmp.File(m.focus).Slice(start, end))
	return copyCmd(m.clipboard, text, format, n)
}

func (m *Model) handleCopied(msg copiedMsg) {
	if msg.err != nil {
		log.Printf("copy failed: %v", msg.err)
		m.setError("copy failed: " + msg.err.Error())
		return
	}
	m.setMessage(copiedMessage(msg))
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *Model) setError(s string) {
	m.message = s
	m.isError = true
}

func (m *Model) clearMessage() {
	m.message = ""
	m.isError = false
}

// Cursor returns the offset under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current interaction mode.
func (m Model) Mode() dring.Mode {
	return m.mode
}

// Focus returns the file that search and export operate on.
func (m Model) Focus() dring.Side {
	return m.focus
}

// Matches returns the active match list.
func (m Model) Matches() dring.Matches {
	return m.matches
}

// Selection returns the visual selection. The boolean is false outside
// visual mode.
func (m Model) Selection() (dring.Selection, bool) {
	return m.selection, m.mode == dring.ModeVisual
}

// Query returns the text typed into the search prompt.
func (m Model) Query() string {
	return m.input.Value()
}

// SearchError returns the parse error shown under the search prompt.
func (m Model) SearchError() error {
	return m.inputErr
}

// Message returns the transient status message.
func (m Model) Message() string {
	return m.message
}

// TopRow returns the first visible row.
func (m Model) TopRow() int {
	return m.top
}

// BytesPerRow returns the current row width in bytes.
func (m Model) BytesPerRow() int {
	return m.bytesPerRow
}
