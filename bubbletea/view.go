package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/dring"
)

const divider = " │ "

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteByte('\n')

	rows := m.visibleRows()
	if m.cmp.Len() == 0 {
		sb.WriteString(m.styles.offset.Render("both files are empty"))
		rows--
		sb.WriteByte('\n')
	}
	total := m.totalRows()
	for i := 0; i < rows; i++ {
		if row := m.top + i; row < total && m.cmp.Len() > 0 {
			m.renderRow(&sb, row)
		}
		sb.WriteByte('\n')
	}

	if m.mode.IsSearch() {
		sb.WriteString(m.renderPrompt())
	} else {
		sb.WriteString(m.renderStatus())
	}
	return sb.String()
}

// paneWidth is the display width of one file's hex and ASCII columns.
func (m *Model) paneWidth() int {
	return 4*m.bytesPerRow + 1
}

func (m *Model) renderHeader() string {
	digits := offsetDigits(m.cmp.Len())
	var sb strings.Builder
	sb.WriteString(m.styles.header.Render(fitWidth("offset", digits)))
	for _, side := range []dring.Side{dring.SideA, dring.SideB} {
		sb.WriteString(m.styles.offset.Render(divider))
		f := m.cmp.File(side)
		marker := " "
		style := m.styles.header
		if side == m.focus {
			marker = "▸"
			style = m.styles.focused
		}
		title := fmt.Sprintf("%s%s %s (%d bytes)", marker, side, f.Path, f.Len())
		sb.WriteString(style.Render(fitWidth(title, m.paneWidth())))
	}
	return sb.String()
}

// fitWidth truncates or pads s to exactly w display columns.
func fitWidth(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m *Model) renderRow(sb *strings.Builder, row int) {
	digits := offsetDigits(m.cmp.Len())
	start := row * m.bytesPerRow
	sb.WriteString(m.styles.offset.Render(fmt.Sprintf("%0*x", digits, start)))

	b := runBuilder{sb: sb, table: &m.styles}
	for _, side := range []dring.Side{dring.SideA, dring.SideB} {
		sb.WriteString(m.styles.offset.Render(divider))
		cells := m.rowCells(side, start)

		for i, c := range cells {
			if i > 0 {
				b.write(separatorKey(cells[i-1], c), ' ')
			}
			if c.present {
				b.write(c.key, hexLower[c.value>>4], hexLower[c.value&0x0f])
			} else {
				b.write(c.key, ' ', ' ')
			}
		}
		b.flush()
		sb.WriteString("  ")
		for _, c := range cells {
			if c.present {
				b.write(c.key, dring.Glyph(c.value))
			} else {
				b.write(c.key, ' ')
			}
		}
		b.flush()
	}
}

const hexLower = "0123456789abcdef"

// cell is one displayed byte with its resolved style key.
type cell struct {
	key     cellKey
	value   byte
	present bool
}

// cellKey indexes the style table. plain cells are written unstyled.
type cellKey struct {
	class dring.ByteClass
	hl    dring.Highlight
	plain bool
}

var plainKey = cellKey{plain: true}

func (m *Model) rowCells(side dring.Side, start int) []cell {
	cells := make([]cell, m.bytesPerRow)
	f := m.cmp.File(side)
	for i := range cells {
		off := start + i
		if off >= m.cmp.Len() {
			cells[i].key = plainKey
			continue
		}
		v, ok := f.At(off)
		class := dring.ClassAbsent
		if ok {
			class = dring.Classify(v)
		}
		marks := dring.Marks{
			Cursor: off == m.cursor,
			Diff:   ok && m.cmp.Diff.Contains(off),
		}
		if m.mode == dring.ModeVisual && side == m.focus {
			marks.Selected = m.selection.Contains(off)
		}
		if ok && side == m.matches.Side {
			marks.Match, marks.CurrentMatch = m.matches.Covers(off)
		}
		cells[i] = cell{
			key:     cellKey{class: class, hl: dring.Resolve(marks)},
			value:   v,
			present: ok,
		}
	}
	return cells
}

// separatorKey styles the space between two hex pairs so that selections
// and matches read as one continuous band.
func separatorKey(left, right cell) cellKey {
	h := left.key.hl
	if left.key.plain || right.key.plain || h != right.key.hl {
		return plainKey
	}
	switch h {
	case dring.HighlightSelection, dring.HighlightMatch, dring.HighlightCurrentMatch, dring.HighlightDiff:
		return cellKey{class: dring.ClassAbsent, hl: h}
	}
	return plainKey
}

// runBuilder batches consecutive cells sharing a style into one Render call.
type runBuilder struct {
	sb    *strings.Builder
	table *styleTable
	buf   []byte
	cur   cellKey
}

func (b *runBuilder) write(k cellKey, text ...byte) {
	if len(b.buf) > 0 && k != b.cur {
		b.flush()
	}
	b.cur = k
	b.buf = append(b.buf, text...)
}

func (b *runBuilder) flush() {
	if len(b.buf) == 0 {
		return
	}
	if b.cur.plain {
		b.sb.Write(b.buf)
	} else {
		b.sb.WriteString(b.table.cell(b.cur.class, b.cur.hl).Render(string(b.buf)))
	}
	b.buf = b.buf[:0]
}

func (m *Model) renderStatus() string {
	digits := offsetDigits(m.cmp.Len())
	left := fmt.Sprintf(" %s │ %0*x │ A %s B %s │ diff %s │ match %s ",
		m.mode, digits, m.cursor,
		m.byteLabel(dring.SideA), m.byteLabel(dring.SideB),
		m.diffPosition(), m.matchPosition())
	line := m.styles.statusBar.Render(left)

	if m.message != "" {
		style := m.styles.statusBar
		if m.isError {
			style = m.styles.errorText
		}
		line += " " + style.Render(m.message)
	}
	return m.withHelp(line)
}

func (m *Model) renderPrompt() string {
	line := m.input.View()
	if m.inputErr != nil {
		line += "  " + m.styles.errorText.Render(m.inputErr.Error())
	}
	return m.withHelp(line)
}

// withHelp right-aligns as many key hints after line as fit.
func (m *Model) withHelp(line string) string {
	avail := m.width - lipgloss.Width(line) - 2
	if avail <= 0 {
		return ansi.Truncate(line, m.width, "")
	}
	h := m.help
	h.Width = avail
	hints := h.ShortHelpView(modeHelp{keys: m.keys, mode: m.mode}.ShortHelp())
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(hints)
	return line + strings.Repeat(" ", gap) + hints
}

func (m *Model) byteLabel(side dring.Side) string {
	if b, ok := m.cmp.File(side).At(m.cursor); ok {
		return fmt.Sprintf("%02x", b)
	}
	return "--"
}

func (m *Model) diffPosition() string {
	total := m.cmp.Diff.Count()
	if total == 0 {
		return "none"
	}
	if i, ok := m.cmp.Diff.Index(m.cursor); ok {
		return fmt.Sprintf("%d/%d", i+1, total)
	}
	return fmt.Sprintf("-/%d", total)
}

func (m *Model) matchPosition() string {
	i, _, ok := m.matches.Current()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d/%d", i+1, m.matches.Len())
}
