// Package osc52 copies text to the system clipboard with the OSC 52 terminal
// escape sequence.
package osc52

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/fwojciec/dring"
)

// Compile-time interface verification.
var _ dring.Clipboard = (*Clipboard)(nil)

// DefaultLimit is the largest payload written, in bytes. Many terminals drop
// longer sequences.
const DefaultLimit = 100 * 1024

// ErrPayloadTooLarge is returned when the text exceeds the clipboard limit.
var ErrPayloadTooLarge = errors.New("clipboard payload too large")

// Clipboard writes OSC 52 sequences to a terminal.
type Clipboard struct {
	out   io.Writer
	mode  osc52.Mode
	limit int
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithOutput sets the writer the sequence goes to. Defaults to os.Stderr,
// which shares the terminal with the UI on stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Clipboard) {
		c.out = w
	}
}

// WithMode forces the sequence mode instead of detecting it from the
// environment.
func WithMode(m osc52.Mode) Option {
	return func(c *Clipboard) {
		c.mode = m
	}
}

// WithLimit sets the maximum payload size. Zero disables the limit.
func WithLimit(n int) Option {
	return func(c *Clipboard) {
		c.limit = n
	}
}

// NewClipboard creates a clipboard that detects tmux and screen from the
// environment.
func NewClipboard(opts ...Option) *Clipboard {
	c := &Clipboard{
		out:   os.Stderr,
		mode:  DetectMode(os.Getenv("TMUX"), os.Getenv("TERM")),
		limit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy writes text to the clipboard.
func (c *Clipboard) Copy(text string) error {
	// Sequence.Limit would emit an empty sequence with no error.
	if c.limit > 0 && len(text) > c.limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(text), c.limit)
	}
	seq := osc52.New(text).Mode(c.mode)
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}

// DetectMode chooses the passthrough wrapping for the terminal multiplexer
// described by the TMUX and TERM environment values.
func DetectMode(tmux, term string) osc52.Mode {
	term = strings.ToLower(term)
	switch {
	case tmux != "" || strings.HasPrefix(term, "tmux"):
		return osc52.TmuxMode
	case strings.HasPrefix(term, "screen"):
		return osc52.ScreenMode
	default:
		return osc52.DefaultMode
	}
}
