package bubbletea

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/fwojciec/dring"
)

// KeyMap defines the key bindings for every mode.
type KeyMap struct {
	// Movement, shared by normal and visual mode.
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	RowStart     key.Binding
	RowEnd       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextDiff     key.Binding
	PrevDiff     key.Binding

	// Normal mode.
	SearchHex   key.Binding
	SearchASCII key.Binding
	NextMatch   key.Binding
	PrevMatch   key.Binding
	Visual      key.Binding
	SwitchFile  key.Binding
	Cancel      key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding

	// Visual mode.
	CopyHex   key.Binding
	CopyASCII key.Binding

	// Search prompt.
	Submit     key.Binding
	ToggleKind key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		RowStart:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "row start")),
		RowEnd:       key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "row end")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("^u", "half page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "half page down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Top:          key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first byte")),
		Bottom:       key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last byte")),
		NextDiff:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next diff")),
		PrevDiff:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev diff")),

		SearchHex:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "hex search")),
		SearchASCII: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ascii search")),
		NextMatch:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		PrevMatch:   key.NewBinding(key.WithKeys("N", "p"), key.WithHelp("N", "prev match")),
		Visual:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
		SwitchFile:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch file")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),

		CopyHex:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy hex")),
		CopyASCII: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy ascii")),

		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		ToggleKind: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "hex/ascii")),
	}
}

// moveHelp summarises the four direction keys in the status bar.
var moveHelp = key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("h/j/k/l", "move"))

// matchHelp summarises n and N.
var matchHelp = key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n/N", "match"))

// diffHelp summarises ] and [.
var diffHelp = key.NewBinding(key.WithKeys("]", "["), key.WithHelp("]/[", "diff"))

// copyHelp summarises y and Y.
var copyHelp = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y/Y", "copy hex/ascii"))

// modeHelp implements help.KeyMap for the bindings relevant in one mode.
type modeHelp struct {
	keys KeyMap
	mode dring.Mode
}

func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch {
	case h.mode.IsSearch():
		return []key.Binding{k.Submit, k.ToggleKind, k.Cancel}
	case h.mode == dring.ModeVisual:
		return []key.Binding{moveHelp, copyHelp, k.Cancel, k.Quit}
	default:
		return []key.Binding{moveHelp, k.SearchHex, k.SearchASCII, matchHelp, diffHelp, k.Visual, k.SwitchFile, k.Quit}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.RowStart, k.RowEnd},
		{k.HalfPageUp, k.HalfPageDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.SearchHex, k.SearchASCII, k.NextMatch, k.PrevMatch, k.NextDiff, k.PrevDiff},
		{k.Visual, k.CopyHex, k.CopyASCII, k.SwitchFile, k.Cancel, k.Quit},
	}
}
