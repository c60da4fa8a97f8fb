package app

import (
	"errors"
	"fmt"
	"io/fs"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no backend configured")

	// ErrKeyRead indicates the terminal could not deliver a key. It is fatal.
	ErrKeyRead = errors.New("read")

	// ErrNoFilename indicates a save was abandoned because no name was given.
	ErrNoFilename = errors.New("no filename")

	// ErrNotTerminal indicates standard input or output is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// FileError represents a file operation error.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// PanicError carries a panic recovered from the event loop.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ioReason returns the operating system's description of a file error
// without the operation and path, like strerror.
func ioReason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
