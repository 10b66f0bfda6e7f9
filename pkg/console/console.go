package console

import (
	"context"
	"errors"
)

var (
	// ErrAborted signals the operator interrupted input (e.g., Ctrl+C).
	ErrAborted = errors.New("console: aborted")
	// ErrNotConfigured is returned when a console is used without a reader or
	// writer.
	ErrNotConfigured = errors.New("console: not configured")
)

// Console abstracts the terminal so prompt loops can be tested without a real
// TTY and callers can swap implementations.
//
// Input displays prompt and reads one line of text without its line
// terminator. It returns io.EOF when no more input is available and
// ErrAborted when the operator interrupts the read. Info writes one line of
// text followed by a newline.
type Console interface {
	Input(ctx context.Context, prompt string) (string, error)
	Info(ctx context.Context, msg string) error
}
