// Package logging routes slog output to a rotating file. The TUI owns
// the terminal, so nothing may write to stdout or stderr while it runs.
package logging

import (
	"io"
	"log/slog"
	"strings"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger. An empty path discards all
// output, which keeps best-effort debug logging harmless in tests.
func Setup(filePath, level string) {
	var w io.Writer = io.Discard
	if strings.TrimSpace(filePath) != "" {
		w = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		}
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
