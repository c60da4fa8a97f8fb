// Package main is the entry point for the kilo editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/kilo/internal/app"
	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = app.Version
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts == nil {
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return exitCode(os.Stderr, app.ErrNotTerminal)
	}

	application, err := app.New(*opts)
	if err != nil {
		return exitCode(os.Stderr, err)
	}
	defer application.Close()

	app.SetLogger(application.Logger())
	defer app.SetLogger(nil)

	// Ensure the terminal is restored on all exit paths
	defer application.Shutdown()

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Raw mode turns Ctrl-C into a key, so these only arrive from kill
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	err = application.Run()
	application.Shutdown()
	if errors.Is(err, backend.ErrClosed) {
		// Shut down by a signal
		app.GetLogger().Info("stopped by signal")
		return 0
	}
	code := exitCode(os.Stderr, err)
	app.GetLogger().Debug("exit status %d", code)
	return code
}

// exitCode reports err on w and returns the process exit status. A quit
// request is a normal exit. The errno of a failed system call is printed
// along with the error.
func exitCode(w io.Writer, err error) int {
	if err == nil || errors.Is(err, app.ErrQuit) {
		return 0
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		fmt.Fprintf(w, "Error: %v (errno %d)\n", err, int(errno))
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	var perr *app.PanicError
	if errors.As(err, &perr) {
		fmt.Fprintf(w, "%s\n", perr.Stack)
	}
	return 1
}

// parseFlags parses the command line. It returns nil options when the
// program should exit successfully without starting the editor.
func parseFlags(args []string) (*app.Options, error) {
	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)

	opts := &app.Options{Version: version}
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, warning, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "kilo - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: kilo [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  Ctrl-S  save    Ctrl-Q  quit    Ctrl-F  find\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showVersion {
		fmt.Printf("kilo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return nil, nil
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, warning or error)", opts.LogLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.Filename = fs.Arg(0)
	default:
		return nil, fmt.Errorf("too many files: kilo edits one file at a time")
	}

	return opts, nil
}
