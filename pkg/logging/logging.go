// Package logging configures the process-wide slog default with colored
// output via tint.
//
// The host application calls Init once at startup, usually with the level
// string from config:
//
//	logging.Init(cfg.LogLevel)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Init installs a tint handler writing to stderr at the named level
// (debug, info, warn, error; anything else means info).
func Init(level string) {
	InitWriter(os.Stderr, ParseLevel(level))
}

// InitWriter installs a tint handler on w at the given level. Split out
// for hosts that redirect logs (and for tests).
func InitWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
