package app

import (
	"io"
	"log/slog"
)

// newLogger creates an isolated slog.Logger writing to w. It does not touch
// the global logger. Unknown levels fall back to info and any format other
// than "json" yields the text handler.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With("component", "enginegrid")
}
