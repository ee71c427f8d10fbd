// Package logging builds the diagnostic logger of the command line tools.
// Reports meant for the user are printed by package output instead.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Debug messages are only written
// when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, false)
}
