package bubbletea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/dring"
)

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	format dring.ExportFormat
	bytes  int
	err    error
}

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(c dring.Clipboard, text string, format dring.ExportFormat, n int) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{format: format, bytes: n, err: c.Copy(text)}
	}
}

func copiedMessage(msg copiedMsg) string {
	unit := "bytes"
	if msg.bytes == 1 {
		unit = "byte"
	}
	return fmt.Sprintf("copied %d %s as %s", msg.bytes, unit, msg.format)
}
