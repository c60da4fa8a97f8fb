package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/backend"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestApp(t *testing.T, filename string, configure ...func(*config.Config)) (*Application, *backend.NullBackend, *fakeClock) {
	t.Helper()

	cfg := config.Default()
	for _, fn := range configure {
		fn(cfg)
	}
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	app, err := New(Options{Config: cfg, Filename: filename, Clock: clock.Now})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(app.Close)

	b := backend.NewNullBackend(40, 10)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() error = %v", err)
	}
	return app, b, clock
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func ctrl(r rune) key.Event { return key.Ctrl(r) }

func special(k key.Key) key.Event { return key.NewSpecialEvent(k, key.ModNone) }

func typeString(t *testing.T, app *Application, s string) {
	t.Helper()
	for _, r := range s {
		if err := app.ProcessKey(key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatalf("ProcessKey(%q) error = %v", r, err)
		}
	}
}

func press(t *testing.T, app *Application, events ...key.Event) {
	t.Helper()
	for _, ev := range events {
		if err := app.ProcessKey(ev); err != nil {
			t.Fatalf("ProcessKey(%s) error = %v", ev, err)
		}
	}
}

func TestNewApplication(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	if app.Filename() != "" {
		t.Errorf("expected unnamed document, got %q", app.Filename())
	}
	if !app.Document().IsEmpty() {
		t.Error("expected an empty document")
	}
	if app.Config().Editor.QuitTimes != 3 {
		t.Error("expected default config")
	}
	if app.IsRunning() {
		t.Error("should not be running before Run")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\nquit_times = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigPath: path})
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "config" {
		t.Fatalf("expected config InitError, got %v", err)
	}
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("expected the validation failure to be wrapped, got %v", err)
	}
}

func TestNewLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "kilo.log")

	app, err := New(Options{Config: config.Default(), LogFile: logPath, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if app.Config().Logging.Level != "debug" {
		t.Errorf("log level flag not applied: %q", app.Config().Logging.Level)
	}
	app.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "editor started") || !strings.Contains(string(data), "session=") {
		t.Errorf("unexpected log content %q", data)
	}
}

func TestLogComponents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "kilo.log")
	path := writeFile(t, "one\n")

	app, err := New(Options{Config: config.Default(), Filename: path, LogFile: logPath, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	app.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"component=file", "component=watcher", "opened " + path} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestNewLogFileError(t *testing.T) {
	_, err := New(Options{
		Config:  config.Default(),
		LogFile: filepath.Join(t.TempDir(), "missing", "kilo.log"),
	})
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "logging" {
		t.Errorf("expected logging InitError, got %v", err)
	}
}

func TestOpenExistingFile(t *testing.T) {
	path := writeFile(t, "alpha\r\nbeta\n")
	app, _, _ := newTestApp(t, path)

	if app.Filename() != path {
		t.Errorf("Filename() = %q, want %q", app.Filename(), path)
	}
	lines := app.Document().Lines()
	if len(lines) != 2 || lines[0] != "alpha" || lines[1] != "beta" {
		t.Errorf("unexpected lines %q", lines)
	}
	if app.Document().IsDirty() {
		t.Error("a freshly opened file should be clean")
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	app, _, _ := newTestApp(t, path)

	if app.Filename() != path || !app.Document().IsEmpty() {
		t.Errorf("expected an empty document named %q", path)
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := New(Options{Config: config.Default(), Filename: t.TempDir()})
	var ferr *FileError
	if !errors.As(err, &ferr) || ferr.Op != "open" {
		t.Errorf("expected open FileError, got %v", err)
	}
}

func TestSetBackendWhileRunning(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.running.Store(true)
	defer app.running.Store(false)

	if err := app.SetBackend(backend.NewNullBackend(10, 10)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning from Run, got %v", err)
	}
}

func TestRunNoBackend(t *testing.T) {
	app, err := New(Options{Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestRunQuit(t *testing.T) {
	app, b, _ := newTestApp(t, "")
	b.PostKeys(ctrl('q'))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if b.Initialized() {
		t.Error("terminal should be restored after Run")
	}
	if app.IsRunning() {
		t.Error("should not be running after Run returns")
	}

	// 40x10 screen: an 8-row pane, the status bar and the message line
	if got := b.Line(0); !strings.HasPrefix(got, "~") {
		t.Errorf("row 0 = %q, want empty row marker", got)
	}
	if got := b.Line(2); !strings.Contains(got, "Kilo Editor -- version 0.0.1") {
		t.Errorf("row 2 = %q, want welcome banner", got)
	}
	if got := b.Line(8); !strings.HasPrefix(got, "[No Name] - 0 lines") {
		t.Errorf("status row = %q", got)
	}
	if got := b.Line(9); !strings.HasPrefix(got, "HELP: Ctrl-S = save") {
		t.Errorf("message row = %q", got)
	}
}

func TestRunEditAndQuitDirty(t *testing.T) {
	app, b, _ := newTestApp(t, "", func(c *config.Config) { c.Editor.QuitTimes = 1 })
	b.PostString("hi")
	b.PostKeys(ctrl('q'), ctrl('q'))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if got := app.Document().Lines(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("unexpected lines %q", got)
	}
	if got := b.Line(0); !strings.HasPrefix(got, "hi ") {
		t.Errorf("row 0 = %q", got)
	}
	if got := b.Line(8); !strings.Contains(got, "(modified)") {
		t.Errorf("status row = %q, want modified marker", got)
	}
	if got := b.Line(9); !strings.HasPrefix(got, "WARNING!!! File has unsaved changes.") {
		t.Errorf("message row = %q, want quit warning", got)
	}
}

func TestRunKeyReadError(t *testing.T) {
	app, b, _ := newTestApp(t, "")

	err := app.Run()
	if !errors.Is(err, ErrKeyRead) || !errors.Is(err, backend.ErrNoEvents) {
		t.Fatalf("Run() = %v, want wrapped key read error", err)
	}
	if b.Initialized() {
		t.Error("terminal should be restored after a fatal error")
	}
}

func TestRunResize(t *testing.T) {
	app, b, _ := newTestApp(t, "")
	b.PostEvent(backend.Event{Type: backend.EventResize, Width: 30, Height: 6})
	b.PostKeys(ctrl('q'))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v", err)
	}
	if app.View().Width() != 30 || app.View().Height() != 4 {
		t.Errorf("view is %dx%d, want 30x4", app.View().Width(), app.View().Height())
	}
}

type panicBackend struct {
	*backend.NullBackend
}

func (panicBackend) PollEvent() backend.Event {
	panic("boom")
}

func TestRunRecoversPanic(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	nb := backend.NewNullBackend(20, 5)
	if err := app.SetBackend(panicBackend{nb}); err != nil {
		t.Fatal(err)
	}

	err := app.Run()
	var perr *PanicError
	if !errors.As(err, &perr) || perr.Value != "boom" {
		t.Fatalf("Run() = %v, want PanicError", err)
	}
	if len(perr.Stack) == 0 {
		t.Error("expected a stack trace")
	}
	if nb.Initialized() {
		t.Error("terminal should be restored after a panic")
	}
}

func TestShutdownIdempotent(t *testing.T) {
	app, b, _ := newTestApp(t, "")
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	app.Shutdown()
	app.Shutdown()
	if b.Initialized() {
		t.Error("Shutdown should restore the terminal")
	}
}

func TestStatusMessageExpiry(t *testing.T) {
	app, _, clock := newTestApp(t, "")

	app.SetStatus("%d bytes", 12)
	if got := app.currentMessage(); got != "12 bytes" {
		t.Fatalf("currentMessage() = %q", got)
	}

	clock.Advance(4 * time.Second)
	if app.currentMessage() == "" {
		t.Error("message should still be visible after 4s")
	}

	clock.Advance(time.Second)
	if got := app.currentMessage(); got != "" {
		t.Errorf("message should expire after 5s, got %q", got)
	}
	if app.StatusMessage() != "12 bytes" {
		t.Error("StatusMessage keeps the text after expiry")
	}
}

func TestFileChangedOnDisk(t *testing.T) {
	path := writeFile(t, "one\n")
	app, _, _ := newTestApp(t, path)

	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		app.refresh()
		if strings.Contains(app.StatusMessage(), "changed on disk") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("expected a changed-on-disk message, got %q", app.StatusMessage())
}

func TestDocumentRoundTrip(t *testing.T) {
	path := writeFile(t, "a\tb\n\nlast\n")
	app, _, _ := newTestApp(t, path)

	if got := app.Document().Serialize(); got != "a\tb\n\nlast\n" {
		t.Errorf("Serialize() = %q", got)
	}
	if _, ok := app.Document().Row(3); ok {
		t.Error("row 3 should be the virtual row")
	}
}
