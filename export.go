package dring

import "strings"

// Selection is a contiguous range marked in visual mode. Anchor is where the
// selection started; Cursor follows the cursor.
type Selection struct {
	Anchor int
	Cursor int
}

// Range returns the ordered inclusive bounds of the selection.
func (s Selection) Range() (start, end int) {
	return min(s.Anchor, s.Cursor), max(s.Anchor, s.Cursor)
}

// Len returns the number of selected offsets.
func (s Selection) Len() int {
	start, end := s.Range()
	return end - start + 1
}

// Contains reports whether off is selected.
func (s Selection) Contains(off int) bool {
	start, end := s.Range()
	return off >= start && off <= end
}

// ExportFormat selects how exported bytes are written.
type ExportFormat int

// Export formats.
const (
	ExportHex ExportFormat = iota
	ExportASCII
)

func (f ExportFormat) String() string {
	if f == ExportASCII {
		return "ascii"
	}
	return "hex"
}

// Export renders the bytes of f in the inclusive range [start, end].
// Offsets past the end of f are skipped. An inverted range yields "".
func Export(f *File, start, end int, format ExportFormat) string {
	data := f.Slice(start, end)
	if format == ExportASCII {
		return FormatASCII(data)
	}
	return FormatHex(data)
}

const hexDigits = "0123456789ABCDEF"

// FormatHex writes each byte as two uppercase hex digits, space-separated.
func FormatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(data)*3 - 1)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}

// FormatASCII writes printable bytes as themselves and everything else as
// '.', one character per byte.
func FormatASCII(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteByte(Glyph(b))
	}
	return sb.String()
}

// Glyph returns the character shown for b in ASCII columns.
func Glyph(b byte) byte {
	if b >= 0x20 && b <= 0x7e {
		return b
	}
	return '.'
}
