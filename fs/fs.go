// Package fs loads compared files from the local filesystem.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/dring"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ dring.Loader = (*Loader)(nil)

// Loader reads whole files into memory.
type Loader struct{}

// NewLoader creates a filesystem loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path. Errors are *os.PathError values, so their
// message names the file.
func (l *Loader) Load(ctx context.Context, path string) (*dring.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &dring.File{Path: path, Data: data}, nil
}

// LoadPair reads both files concurrently and returns once both are in
// memory. The first failure cancels the other read and is returned as is.
func LoadPair(ctx context.Context, l dring.Loader, pathA, pathB string) (*dring.File, *dring.File, error) {
	var a, b *dring.File
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := l.Load(ctx, pathA)
		a = f
		return err
	})
	g.Go(func() error {
		f, err := l.Load(ctx, pathB)
		b = f
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
