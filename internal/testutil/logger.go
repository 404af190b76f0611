// Package testutil holds small helpers shared by unit tests.
package testutil

import (
	"io"
	"log/slog"
)

// Logger returns a logger that discards all output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
