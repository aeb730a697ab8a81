package dring

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// SearchKind selects how search input is interpreted.
type SearchKind int

// Search kinds.
const (
	SearchHex SearchKind = iota
	SearchASCII
)

// Toggle returns the other search kind.
func (k SearchKind) Toggle() SearchKind {
	if k == SearchHex {
		return SearchASCII
	}
	return SearchHex
}

func (k SearchKind) String() string {
	if k == SearchASCII {
		return "ascii"
	}
	return "hex"
}

// ErrOddHexDigits is returned when a hex pattern ends with half a byte.
var ErrOddHexDigits = errors.New("odd number of hex digits")

// InvalidHexError reports a character that is not a hex digit.
type InvalidHexError struct {
	Char rune
	Pos  int // rune index in the user input
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex digit %q at position %d", e.Char, e.Pos+1)
}

// Pattern is a parsed search pattern.
type Pattern struct {
	Kind  SearchKind
	Bytes []byte
}

// Len returns the pattern length in bytes.
func (p Pattern) Len() int {
	return len(p.Bytes)
}

// ParsePattern converts user input into a pattern.
//
// Hex input ignores whitespace and letter case ("de AD be ef"). ASCII input
// is taken as its UTF-8 encoding.
func ParsePattern(kind SearchKind, input string) (Pattern, error) {
	if kind == SearchASCII {
		return Pattern{Kind: kind, Bytes: []byte(input)}, nil
	}

	var (
		out    []byte
		hi     byte
		digits int
	)
	for pos, r := range []rune(input) {
		if unicode.IsSpace(r) {
			continue
		}
		v, ok := hexValue(r)
		if !ok {
			return Pattern{}, &InvalidHexError{Char: r, Pos: pos}
		}
		if digits%2 == 0 {
			hi = v
		} else {
			out = append(out, hi<<4|v)
		}
		digits++
	}
	if digits%2 != 0 {
		return Pattern{}, ErrOddHexDigits
	}
	return Pattern{Kind: kind, Bytes: out}, nil
}

func hexValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// Find returns the start offset of every occurrence of pattern in buf,
// ascending. Overlapping occurrences are all reported. Runs in
// O(len(buf)+len(pattern)).
func Find(buf []byte, pattern Pattern) []int {
	p := pattern.Bytes
	if len(p) == 0 || len(p) > len(buf) {
		return nil
	}

	// fail[i] is the length of the longest proper border of p[:i+1].
	fail := make([]int, len(p))
	for i, k := 1, 0; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = fail[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		fail[i] = k
	}

	var matches []int
	k := 0
	for i, b := range buf {
		for k > 0 && b != p[k] {
			k = fail[k-1]
		}
		if b == p[k] {
			k++
		}
		if k == len(p) {
			matches = append(matches, i-len(p)+1)
			k = fail[k-1]
		}
	}
	return matches
}

// Matches is the result of one search submission with a cursor over it.
// The zero value has no matches.
type Matches struct {
	Pattern Pattern
	Side    Side
	Offsets []int
	current int
}

// NewMatches runs pattern over the file on side and positions the current
// match on the first result.
func NewMatches(f *File, side Side, pattern Pattern) Matches {
	return Matches{
		Pattern: pattern,
		Side:    side,
		Offsets: Find(f.Data, pattern),
	}
}

// Len returns the number of matches.
func (m Matches) Len() int {
	return len(m.Offsets)
}

// Current returns the current match index and offset. The boolean is false
// when there are no matches.
func (m Matches) Current() (index, offset int, ok bool) {
	if m.Len() == 0 {
		return 0, 0, false
	}
	return m.current, m.Offsets[m.current], true
}

// Next advances cyclically to the following match.
func (m *Matches) Next() (offset int, ok bool) {
	if m.Len() == 0 {
		return 0, false
	}
	m.current = (m.current + 1) % len(m.Offsets)
	return m.Offsets[m.current], true
}

// Prev moves cyclically to the preceding match.
func (m *Matches) Prev() (offset int, ok bool) {
	if m.Len() == 0 {
		return 0, false
	}
	m.current = (m.current - 1 + len(m.Offsets)) % len(m.Offsets)
	return m.Offsets[m.current], true
}

// Covers reports whether off lies inside any match, and whether that match is
// the current one. A byte covered by both the current and another match
// reports current.
func (m Matches) Covers(off int) (covered, current bool) {
	if m.Len() == 0 || m.Pattern.Len() == 0 {
		return false, false
	}
	n := m.Pattern.Len()
	if cur := m.Offsets[m.current]; off >= cur && off < cur+n {
		return true, true
	}
	// First match whose start could still cover off.
	lo := sort.Search(len(m.Offsets), func(i int) bool {
		return m.Offsets[i] > off-n
	})
	return lo < len(m.Offsets) && m.Offsets[lo] <= off, false
}

// Describe renders the pattern the way the user typed it, normalised.
func (p Pattern) Describe() string {
	if p.Kind == SearchASCII {
		return fmt.Sprintf("%q", string(p.Bytes))
	}
	return strings.ToLower(FormatHex(p.Bytes))
}
