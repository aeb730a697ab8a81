package bubbletea

import "math/bits"

const (
	defaultBytesPerRow = 16
	maxBytesPerRow     = 32
	minOffsetDigits    = 8

	// Fixed columns in a row: " │ " after the offset, "  " between hex and
	// ASCII on each side, " │ " between the sides.
	separatorWidth = 3 + 2 + 3 + 2
)

// rowWidth returns the display width of a row holding bpr bytes per side.
func rowWidth(bpr, offsetDigits int) int {
	// Each side: bpr hex pairs separated by spaces, then bpr glyphs.
	side := 3*bpr - 1 + bpr
	return offsetDigits + separatorWidth + 2*side
}

// BytesPerRowFor returns the largest power of two, at most 32, whose rows fit
// in width columns. It never returns less than 1.
func BytesPerRowFor(width, offsetDigits int) int {
	best := 1
	for bpr := 1; bpr <= maxBytesPerRow; bpr *= 2 {
		if rowWidth(bpr, offsetDigits) > width {
			break
		}
		best = bpr
	}
	return best
}

// offsetDigits returns how many hex digits are needed to print offsets of a
// comparison of length n.
func offsetDigits(n int) int {
	if n <= 1 {
		return minOffsetDigits
	}
	d := (bits.Len(uint(n-1)) + 3) / 4
	return max(d, minOffsetDigits)
}

// resize records new terminal dimensions and re-derives the row width.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
	m.input.Width = max(width-len(searchPrompt(m.mode.SearchKind()))-1, 1)
	if m.fixedBPR > 0 {
		m.bytesPerRow = m.fixedBPR
	} else {
		m.bytesPerRow = BytesPerRowFor(width, offsetDigits(m.cmp.Len()))
	}
	m.scrollToCursor()
}

// visibleRows is the number of data rows between the header and the status
// line.
func (m *Model) visibleRows() int {
	return max(m.height-2, 1)
}

// totalRows is the number of rows needed to show the longer file.
func (m *Model) totalRows() int {
	return max((m.cmp.Len()+m.bytesPerRow-1)/m.bytesPerRow, 1)
}

// scrollToCursor re-centres the viewport when the cursor row is outside it.
func (m *Model) scrollToCursor() {
	rows := m.visibleRows()
	row := m.cursor / m.bytesPerRow
	if row < m.top || row >= m.top+rows {
		m.top = row - rows/2
	}
	m.top = max(0, min(m.top, m.totalRows()-rows))
}
