package main

import (
	"log/slog"
	"os"
	"strings"
)

// newLogger builds the process logger. A TUI owns the terminal, so logs go to
// the file named by TASKMAP_LOG when set and nowhere otherwise.
func newLogger() *slog.Logger {
	path := os.Getenv("TASKMAP_LOG")
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}

	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("TASKMAP_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
}
