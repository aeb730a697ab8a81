package dring

// Mode is the interaction state that decides how input is interpreted.
type Mode int

// Modes. Exactly one is active at a time.
const (
	ModeNormal Mode = iota
	ModeSearchHex
	ModeSearchASCII
	ModeVisual
)

// SearchMode returns the search mode for kind.
func SearchMode(kind SearchKind) Mode {
	if kind == SearchASCII {
		return ModeSearchASCII
	}
	return ModeSearchHex
}

// IsSearch reports whether m accepts pattern input.
func (m Mode) IsSearch() bool {
	return m == ModeSearchHex || m == ModeSearchASCII
}

// SearchKind returns the kind of search m edits. Only meaningful when
// IsSearch is true.
func (m Mode) SearchKind() SearchKind {
	if m == ModeSearchASCII {
		return SearchASCII
	}
	return SearchHex
}

func (m Mode) String() string {
	switch m {
	case ModeSearchHex:
		return "SEARCH HEX"
	case ModeSearchASCII:
		return "SEARCH ASCII"
	case ModeVisual:
		return "VISUAL"
	default:
		return "NORMAL"
	}
}
