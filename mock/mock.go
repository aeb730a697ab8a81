// Package mock provides test doubles for dring interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/dring"
)

var (
	_ dring.Loader    = (*Loader)(nil)
	_ dring.Clipboard = (*Clipboard)(nil)
	_ dring.Viewer    = (*Viewer)(nil)
)

// Loader implements dring.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (*dring.File, error)
}

func (m *Loader) Load(ctx context.Context, path string) (*dring.File, error) {
	return m.LoadFn(ctx, path)
}

// Clipboard implements dring.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (m *Clipboard) Copy(text string) error {
	return m.CopyFn(text)
}

// Viewer implements dring.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, cmp *dring.Comparison) error
}

func (m *Viewer) View(ctx context.Context, cmp *dring.Comparison) error {
	return m.ViewFn(ctx, cmp)
}
