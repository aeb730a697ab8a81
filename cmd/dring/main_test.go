package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dring"
	main "github.com/fwojciec/dring/cmd/dring"
	"github.com/fwojciec/dring/fs"
	"github.com/fwojciec/dring/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_PassesComparisonToViewer(t *testing.T) {
	t.Parallel()

	files := map[string][]byte{
		"a.bin": {0x01, 0x02, 0x03},
		"b.bin": {0x01, 0xff, 0x03, 0x04},
	}

	var captured *dring.Comparison
	app := &main.App{
		PathA: "a.bin",
		PathB: "b.bin",
		Loader: &mock.Loader{
			LoadFn: func(_ context.Context, path string) (*dring.File, error) {
				return &dring.File{Path: path, Data: files[path]}, nil
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, cmp *dring.Comparison) error {
				captured = cmp
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "a.bin", captured.A.Path)
	assert.Equal(t, "b.bin", captured.B.Path)
	assert.Equal(t, 4, captured.Len())
	assert.Equal(t, 2, captured.Diff.Count())
}

func TestApp_Run_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.bin")
	pathB := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(pathA, []byte("same"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("same"), 0o644))

	var captured *dring.Comparison
	app := &main.App{
		PathA:  pathA,
		PathB:  pathB,
		Loader: fs.NewLoader(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, cmp *dring.Comparison) error {
				captured = cmp
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.True(t, captured.Diff.Empty())
}

func TestApp_Run_FileNotFound(t *testing.T) {
	t.Parallel()

	app := &main.App{
		PathA:  "/nonexistent/path/to/a.bin",
		PathB:  "/nonexistent/path/to/b.bin",
		Loader: fs.NewLoader(),
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *dring.Comparison) error {
				t.Error("Viewer should not be called when a file cannot be read")
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.Contains(t, err.Error(), "/nonexistent/path/to/")
}

func TestApp_Run_ViewerError(t *testing.T) {
	t.Parallel()

	app := &main.App{
		PathA: "a",
		PathB: "b",
		Loader: &mock.Loader{
			LoadFn: func(_ context.Context, path string) (*dring.File, error) {
				return &dring.File{Path: path}, nil
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *dring.Comparison) error {
				return errors.New("terminal gone")
			},
		},
	}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	t.Run("two files", func(t *testing.T) {
		t.Parallel()

		opts, _, err := main.ParseArgs([]string{"--bytes-per-row", "16", "--theme", "light", "a", "b"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, opts.Files)
		assert.Equal(t, 16, opts.BytesPerRow)
		assert.Equal(t, "light", opts.Theme)
	})

	t.Run("wrong file count", func(t *testing.T) {
		t.Parallel()

		_, _, err := main.ParseArgs([]string{"a"}, &bytes.Buffer{})

		assert.ErrorIs(t, err, main.ErrUsage)
	})

	t.Run("help skips file check", func(t *testing.T) {
		t.Parallel()

		opts, _, err := main.ParseArgs([]string{"-h"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.True(t, opts.ShowHelp)
	})

	t.Run("invalid bytes per row", func(t *testing.T) {
		t.Parallel()

		for _, n := range []string{"3", "64", "-8"} {
			_, _, err := main.ParseArgs([]string{"--bytes-per-row", n, "a", "b"}, &bytes.Buffer{})
			assert.ErrorIs(t, err, main.ErrBytesPerRow, "value %s", n)
		}
	})
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	noEnv := func(string) string { return "" }

	t.Run("help exits zero", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := main.Run(context.Background(), []string{"--help"}, &stdout, &stderr, noEnv)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "Usage: dring [options] <file1> <file2>")
		assert.Empty(t, stderr.String())
	})

	t.Run("version exits zero", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := main.Run(context.Background(), []string{"-V"}, &stdout, &stderr, noEnv)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "dring ")
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := main.Run(context.Background(), []string{"only-one"}, &stdout, &stderr, noEnv)

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "dring: expected exactly two files, got 1")
	})

	t.Run("unknown theme is a usage error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := main.Run(context.Background(), []string{"--theme", "neon", "a", "b"}, &stdout, &stderr, noEnv)

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), `unknown theme "neon"`)
	})

	t.Run("unreadable file exits one naming the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		present := filepath.Join(dir, "present.bin")
		require.NoError(t, os.WriteFile(present, []byte{1}, 0o644))
		missing := filepath.Join(dir, "missing.bin")

		var stdout, stderr bytes.Buffer
		code := main.Run(context.Background(), []string{"--no-color", present, missing}, &stdout, &stderr, noEnv)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "dring: ")
		assert.Contains(t, stderr.String(), "missing.bin")
		assert.Empty(t, stdout.String(), "no UI is drawn")
	})
}
