package app

import (
	"errors"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/engine/search"
	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/viewport"
	"github.com/dshills/kilo/internal/watcher"
)

// Version is the editor version shown in the welcome banner.
const Version = "0.0.1"

// HelpMessage is the status message shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Options configures the application.
type Options struct {
	// ConfigPath is the config file to load. Empty skips the file.
	ConfigPath string

	// Config is used as-is when set, instead of loading ConfigPath.
	Config *config.Config

	// Filename is the file to open at startup. Empty starts an unnamed
	// document.
	Filename string

	// LogLevel and LogFile override the logging settings when set.
	LogLevel string
	LogFile  string

	// Version is shown in the welcome banner. Defaults to Version.
	Version string

	// Clock returns the current time, for status message expiry.
	// Defaults to time.Now.
	Clock func() time.Time
}

// Application is one editing session: a single document shown in a
// viewport on a terminal backend.
type Application struct {
	opts   Options
	cfg    *config.Config
	logger *Logger
	logOut io.Closer

	backend  backend.Backend
	renderer *renderer.Renderer
	view     *viewport.Viewport
	search   *search.Session
	watcher  *watcher.FileWatcher

	filename  string
	status    statusMessage
	quitTimes int
	now       func() time.Time

	running      atomic.Bool
	shutdownOnce sync.Once
	closeOnce    sync.Once
}

// New creates the application: it loads the configuration, opens the log
// and the file named in opts. The terminal is not touched until Run.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.Version == "" {
		opts.Version = Version
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	logger, logOut, err := openLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	app := &Application{
		opts:      opts,
		cfg:       cfg,
		logger:    logger,
		logOut:    logOut,
		view:      viewport.NewForScreen(buffer.New(), 80, 24),
		quitTimes: cfg.Editor.QuitTimes,
		now:       opts.Clock,
	}
	app.search = search.NewSession(app.view)

	if opts.Filename != "" {
		if err := app.Open(opts.Filename); err != nil {
			app.Close()
			return nil, err
		}
	}

	logger.Info("editor started")
	return app, nil
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// View returns the viewport over the open document.
func (app *Application) View() *viewport.Viewport {
	return app.view
}

// Document returns the open document.
func (app *Application) Document() *buffer.Document {
	return app.view.Document()
}

// Filename returns the name of the open file, or "" for an unnamed document.
func (app *Application) Filename() string {
	return app.filename
}

// SetBackend sets the terminal backend. It cannot be changed while running.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run puts the terminal in raw mode and runs the editor until quit or a
// fatal error. The terminal is restored on every exit path, including a
// panic in the loop, which is returned as a *PanicError.
//
// A normal quit returns ErrQuit.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}

	defer func() {
		if r := recover(); r != nil {
			pe := &PanicError{Value: r, Stack: debug.Stack()}
			app.Logger().Error("%v\n%s", r, pe.Stack)
			err = pe
		}
	}()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	status, message := app.cfg.Styles()
	opts := renderer.DefaultOptions()
	opts.ShowWelcome = app.cfg.Editor.ShowWelcome
	opts.Version = app.opts.Version
	opts.StatusStyle = status
	opts.MessageStyle = message
	app.renderer = renderer.New(app.backend, opts)

	w, h := app.backend.Size()
	app.view.ResizeScreen(w, h)
	app.SetStatus(HelpMessage)

	for {
		app.refresh()

		ev, err := app.readKey()
		if err == nil {
			err = app.ProcessKey(ev)
		}
		if err != nil {
			if errors.Is(err, ErrQuit) {
				app.Logger().Info("quit")
			} else {
				app.Logger().Error("exiting: %v", err)
			}
			return err
		}
	}
}

// Shutdown restores the terminal. It is safe to call more than once and
// from another goroutine, which makes a blocked Run return.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}
	})
}

// Close releases the file watcher and the log file. Call it after Run has
// returned.
func (app *Application) Close() {
	app.closeOnce.Do(func() {
		if app.watcher != nil {
			_ = app.watcher.Close()
			app.watcher = nil
		}
		if app.logOut != nil {
			_ = app.logOut.Close()
		}
	})
}

// refresh polls the file watcher and repaints the screen.
func (app *Application) refresh() {
	if app.watcher != nil {
		log := app.Logger().WithComponent("watcher")
		changed, err := app.watcher.Changed()
		if err != nil {
			log.Warn("watching %s: %v", app.watcher.Path(), err)
		}
		if changed {
			log.Warn("%s changed on disk", app.watcher.Path())
			app.SetStatus("Warning: %s changed on disk", app.filename)
		}
	}
	if app.renderer == nil {
		return
	}
	app.renderer.Render(app.view, renderer.Frame{
		Filename: app.filename,
		Message:  app.currentMessage(),
	})
}
