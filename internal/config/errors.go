package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/kilo/internal/renderer/core"
)

// ErrValidationFailed indicates a setting fails validation.
var ErrValidationFailed = errors.New("validation failed")

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Path, e.Value, e.Message)
}

// Is reports ErrValidationFailed as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.QuitTimes < 1 {
		errs = append(errs, &ValidationError{Path: "editor.quit_times", Message: "must be at least 1", Value: c.Editor.QuitTimes})
	}
	if c.Editor.MessageTimeout < 1 {
		errs = append(errs, &ValidationError{Path: "editor.message_timeout", Message: "must be at least 1 second", Value: c.Editor.MessageTimeout})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level})
	}

	colors := []struct {
		path  string
		value string
	}{
		{"ui.status_fg", c.UI.StatusFG},
		{"ui.status_bg", c.UI.StatusBG},
		{"ui.message_fg", c.UI.MessageFG},
	}
	for _, col := range colors {
		if _, err := core.ColorFromHex(col.value); err != nil {
			errs = append(errs, &ValidationError{Path: col.path, Message: err.Error(), Value: col.value})
		}
	}

	return errors.Join(errs...)
}
