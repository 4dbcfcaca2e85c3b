// Package main is the entry point for the gridpaint drawing tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/dshills/gridpaint/internal/app"
	"github.com/dshills/gridpaint/internal/renderer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, tui := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	ui, err := selectUI(tui, application)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetUI(ui)

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// selectUI picks the tcell full-screen UI when requested and stdout is a
// terminal, and the plain writer UI otherwise. Pipes always get the writer.
func selectUI(tui bool, application *app.Application) (renderer.UI, error) {
	if tui && isatty.IsTerminal(os.Stdout.Fd()) {
		return renderer.NewTerminal()
	}
	return renderer.NewWriter(os.Stdin, os.Stdout, application.Session().MaxCommand()), nil
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var tui bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&tui, "tui", false, "Use the full-screen terminal UI")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Gridpaint - command-driven ASCII drawing\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridpaint [options] [<width> <height>]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridpaint                 Open with configured canvas size\n")
		fmt.Fprintf(os.Stderr, "  gridpaint 80 24           Open an 80x24 canvas\n")
		fmt.Fprintf(os.Stderr, "  gridpaint -tui 80 24      Full-screen session\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Gridpaint %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// Zero or two positional arguments: canvas width and height.
	args := flag.Args()
	switch len(args) {
	case 0:
	case 2:
		opts.Width = parseDimension(args[0])
		opts.Height = parseDimension(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Error: expected <width> <height>, got %d arguments\n", len(args))
		flag.Usage()
		os.Exit(1)
	}

	return opts, tui
}

// parseDimension converts one canvas dimension argument. The whole token
// must be a positive base-10 integer.
func parseDimension(arg string) int {
	v, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: irregular character found in %q\n", arg)
		os.Exit(1)
	}
	if v <= 0 {
		fmt.Fprintf(os.Stderr, "Error: canvas dimensions must be positive, got %d\n", v)
		os.Exit(1)
	}
	return v
}
