// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger. It writes to stderr so stdout stays
// free for JSON and MCP output.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init replaces the global Logger with a text handler on w at the given level
// and makes it the slog default.
func Init(w io.Writer, level string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	Logger = slog.New(h)
	slog.SetDefault(Logger)
	return Logger
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
