package dring

// ByteClass is the colour class of a displayed byte.
type ByteClass int

// Byte classes.
const (
	ClassNull      ByteClass = iota // 0x00
	ClassPrintable                  // 0x21-0x7e
	ClassControl                    // whitespace and other ASCII control bytes, 0x7f
	ClassHigh                       // 0x80-0xff
	ClassAbsent                     // offset past the end of the file
)

// Classify returns the colour class of b.
func Classify(b byte) ByteClass {
	switch {
	case b == 0:
		return ClassNull
	case b > 0x20 && b < 0x7f:
		return ClassPrintable
	case b < 0x80:
		return ClassControl
	default:
		return ClassHigh
	}
}

// Highlight is an overlay drawn on top of the byte class colour. Values are
// ordered by precedence: a higher value wins.
type Highlight int

// Highlights, lowest precedence first.
const (
	HighlightNone Highlight = iota
	HighlightDiff
	HighlightMatch
	HighlightCurrentMatch
	HighlightSelection
	HighlightCursor
)

// Marks records every overlay that applies to one byte.
type Marks struct {
	Diff         bool
	Match        bool
	CurrentMatch bool
	Selected     bool
	Cursor       bool
}

// Resolve picks the single overlay to draw for a byte.
func Resolve(m Marks) Highlight {
	switch {
	case m.Cursor:
		return HighlightCursor
	case m.Selected:
		return HighlightSelection
	case m.CurrentMatch:
		return HighlightCurrentMatch
	case m.Match:
		return HighlightMatch
	case m.Diff:
		return HighlightDiff
	default:
		return HighlightNone
	}
}

// Style is a terminal-agnostic text style. Colours are hex strings such as
// "#ff0000"; an empty string leaves the colour unset.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Reverse    bool
}

// Styles is the full set of styles used to draw the comparison.
type Styles struct {
	// Byte classes.
	Null      Style
	Printable Style
	Control   Style
	High      Style
	Absent    Style

	// Overlays. Their colours replace the class colours they set.
	Diff         Style
	Match        Style
	CurrentMatch Style
	Selection    Style
	Cursor       Style

	// Chrome.
	Offset    Style
	Header    Style
	Focused   Style
	StatusBar Style
	Error     Style
}

// Class returns the style for a byte class.
func (s Styles) Class(c ByteClass) Style {
	switch c {
	case ClassNull:
		return s.Null
	case ClassPrintable:
		return s.Printable
	case ClassControl:
		return s.Control
	case ClassHigh:
		return s.High
	default:
		return s.Absent
	}
}

// Overlay returns the style for a highlight. HighlightNone yields the zero
// Style.
func (s Styles) Overlay(h Highlight) Style {
	switch h {
	case HighlightDiff:
		return s.Diff
	case HighlightMatch:
		return s.Match
	case HighlightCurrentMatch:
		return s.CurrentMatch
	case HighlightSelection:
		return s.Selection
	case HighlightCursor:
		return s.Cursor
	default:
		return Style{}
	}
}

// Cell returns the resolved style for a byte of class c under highlight h.
func (s Styles) Cell(c ByteClass, h Highlight) Style {
	st := s.Class(c)
	o := s.Overlay(h)
	if o.Foreground != "" {
		st.Foreground = o.Foreground
	}
	if o.Background != "" {
		st.Background = o.Background
	}
	st.Bold = st.Bold || o.Bold
	st.Reverse = st.Reverse || o.Reverse
	return st
}

// Palette holds the base colours a theme is derived from.
type Palette struct {
	Background string
	Foreground string
	Gray       string
	Cyan       string
	Green      string
	Yellow     string
	Red        string
	Blue       string
	Magenta    string
}

// Theme provides styles for rendering.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
