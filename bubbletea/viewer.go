package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/dring"
)

// Compile-time interface verification.
var _ dring.Viewer = (*Viewer)(nil)

// Viewer implements dring.Viewer using Bubble Tea.
type Viewer struct {
	modelOpts   []Option
	programOpts []tea.ProgramOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithModelOptions passes options through to every Model the viewer creates.
func WithModelOptions(opts ...Option) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// WithProgramOptions sets additional tea.ProgramOptions. Tests use it to
// supply input and output in place of a terminal.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View runs the interactive comparison until the user quits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, cmp *dring.Comparison) error {
	m := NewModel(cmp, v.modelOpts...)
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, v.programOpts...)
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
