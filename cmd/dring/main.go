// Command dring compares two binary files side by side in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/dring"
	"github.com/fwojciec/dring/bubbletea"
	"github.com/fwojciec/dring/fs"
	dl "github.com/fwojciec/dring/lipgloss"
	"github.com/fwojciec/dring/osc52"
	"github.com/muesli/termenv"
)

// version is set via ldflags during build.
var version = "dev"

// ErrUsage is returned when the command line does not name two files.
var ErrUsage = errors.New("expected exactly two files")

// ErrBytesPerRow is returned for a --bytes-per-row value the layout cannot
// use.
var ErrBytesPerRow = errors.New("bytes per row must be 0 or a power of two up to 32")

// App loads two files and hands them to a viewer.
type App struct {
	PathA  string
	PathB  string
	Loader dring.Loader
	Viewer dring.Viewer
}

// Run loads both files and blocks until the viewer exits. Load failures are
// returned before any UI is shown.
func (a *App) Run(ctx context.Context) error {
	fa, fb, err := fs.LoadPair(ctx, a.Loader, a.PathA, a.PathB)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, dring.NewComparison(fa, fb))
}

// Options holds parsed command line settings.
type Options struct {
	BytesPerRow int
	Theme       string
	NoColor     bool
	ShowHelp    bool
	ShowVersion bool
	Files       []string
}

// ParseArgs parses the command line without the program name.
func ParseArgs(args []string, stderr io.Writer) (Options, *flag.FlagSet, error) {
	var opts Options
	flags := flag.NewFlagSet("dring", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.IntVar(&opts.BytesPerRow, "bytes-per-row", 0, "Bytes per row, a power of two up to 32 (0 fits the terminal)")
	flags.StringVar(&opts.Theme, "theme", "auto", "Colour theme: auto, dark or light")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colour output")
	flags.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&opts.ShowVersion, "V", false, "Show version information (shorthand)")
	flags.BoolVar(&opts.ShowHelp, "help", false, "Show help message")
	flags.BoolVar(&opts.ShowHelp, "h", false, "Show help message (shorthand)")

	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "dring - compare two binary files\n\n")
		fmt.Fprintf(out, "Usage: dring [options] <file1> <file2>\n\n")
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  h/j/k/l, arrows   move the cursor\n")
		fmt.Fprintf(out, "  / and ?           search hex bytes or ASCII text (tab toggles)\n")
		fmt.Fprintf(out, "  n/N               next or previous match\n")
		fmt.Fprintf(out, "  ]/[               next or previous difference\n")
		fmt.Fprintf(out, "  v, then y/Y       select, copy as hex or ASCII\n")
		fmt.Fprintf(out, "  tab               switch the file searched and copied\n")
		fmt.Fprintf(out, "  q                 quit\n")
	}

	if err := flags.Parse(args); err != nil {
		return opts, flags, err
	}
	opts.Files = flags.Args()
	if opts.ShowHelp || opts.ShowVersion {
		return opts, flags, nil
	}

	if len(opts.Files) != 2 {
		return opts, flags, fmt.Errorf("%w, got %d", ErrUsage, len(opts.Files))
	}
	if !validBytesPerRow(opts.BytesPerRow) {
		return opts, flags, fmt.Errorf("%w: %d", ErrBytesPerRow, opts.BytesPerRow)
	}
	return opts, flags, nil
}

func validBytesPerRow(n int) bool {
	return n == 0 || (n > 0 && n <= 32 && n&(n-1) == 0)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	opts, flags, err := ParseArgs(args, stderr)
	if err != nil {
		// The flag package has already reported its own parse errors.
		if errors.Is(err, ErrUsage) || errors.Is(err, ErrBytesPerRow) {
			fmt.Fprintf(stderr, "dring: %v\n", err)
		}
		if errors.Is(err, ErrUsage) {
			flags.Usage()
		}
		return 2
	}
	if opts.ShowHelp {
		flags.SetOutput(stdout)
		flags.Usage()
		return 0
	}
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "dring %s\n", version)
		return 0
	}

	if path := getenv("DRING_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "dring")
		if err != nil {
			fmt.Fprintf(stderr, "dring: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	modelOpts, err := modelOptions(opts, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "dring: %v\n", err)
		return 2
	}

	app := &App{
		PathA:  opts.Files[0],
		PathB:  opts.Files[1],
		Loader: fs.NewLoader(),
		Viewer: bubbletea.NewViewer(bubbletea.WithModelOptions(modelOpts...)),
	}
	if err := app.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "dring: %v\n", err)
		return 1
	}
	return 0
}

// modelOptions turns flags and environment into model configuration.
func modelOptions(opts Options, getenv func(string) string) ([]bubbletea.Option, error) {
	renderer := lipgloss.NewRenderer(os.Stdout)
	noColor := opts.NoColor || getenv("NO_COLOR") != ""
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	// Without colour there is no background to query.
	name := opts.Theme
	if noColor && (name == "" || name == "auto") {
		name = "dark"
	}
	theme, err := dl.ThemeByName(name)
	if err != nil {
		return nil, err
	}

	clip := osc52.NewClipboard(
		osc52.WithMode(osc52.DetectMode(getenv("TMUX"), getenv("TERM"))),
	)

	return []bubbletea.Option{
		bubbletea.WithTheme(theme),
		bubbletea.WithRenderer(renderer),
		bubbletea.WithClipboard(clip),
		bubbletea.WithBytesPerRow(opts.BytesPerRow),
	}, nil
}
