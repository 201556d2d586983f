// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	level  = new(slog.LevelVar)
	global *slog.Logger
)

// Init installs a text handler writing to stdout at the named level.
// Valid levels are debug, info, warn and error.
func Init(name string) error {
	return InitWriter(name, os.Stdout)
}

// InitWriter is Init with an explicit destination, used by tests.
func InitWriter(name string, w io.Writer) error {
	lv, err := parseLevel(name)
	if err != nil {
		return err
	}
	level.Set(lv)

	global = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(global)
	return nil
}

// SetLevel changes the level of an already-initialized logger.
func SetLevel(name string) error {
	lv, err := parseLevel(name)
	if err != nil {
		return err
	}
	level.Set(lv)
	return nil
}

// L returns the process logger, falling back to slog's default before Init.
func L() *slog.Logger {
	if global == nil {
		return slog.Default()
	}
	return global
}

// With returns the process logger with extra attributes attached.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", name)
	}
}
