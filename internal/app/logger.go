package app

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns the application logger. LOG_FORMAT=json selects the
// JSON handler; the default "pretty" maps to the human-readable text
// handler. Every record carries a service attribute so the API and worker
// logs can be told apart when aggregated.
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	var handler slog.Handler
	if cfg != nil && cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", "tilbud"))
}
