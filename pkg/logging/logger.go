package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLoggerFromEnv creates a stderr logger using environment variables
// RUN_CPPCHECK_LOG_LEVEL: debug|info|warn|error (default: info)
// RUN_CPPCHECK_LOG_FORMAT: text|json (default: text)
func NewLoggerFromEnv() *slog.Logger {
	return newLogger(os.Stderr, os.Getenv("RUN_CPPCHECK_LOG_LEVEL"), os.Getenv("RUN_CPPCHECK_LOG_FORMAT"))
}

func newLogger(w io.Writer, levelStr, formatStr string) *slog.Logger {
	level := slog.LevelInfo
	format := "text"

	if levelStr != "" {
		level = parseLogLevel(levelStr)
	}

	if formatStr != "" {
		format = strings.ToLower(formatStr)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewFileLogger creates a JSON logger appending to a rotating log file at
// path. The returned closer releases the file.
func NewFileLogger(path string) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), w
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
