package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// default logger instance
	defaultLogger *slog.Logger

	// shared so SetLevel can adjust a running logger
	level = new(slog.LevelVar)
)

// initializes the logger based on environment
func init() {
	Configure(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
}

// rebuilds the default logger for the given environment and level.
// production writes JSON to stdout, anything else writes text to stderr.
// an empty or unknown level falls back to the environment default.
func Configure(env, lvl string) {
	var out io.Writer = os.Stderr
	if env == "production" {
		out = os.Stdout
	}

	configure(out, env, lvl)
}

func configure(out io.Writer, env, lvl string) {
	parsed, err := ParseLevel(lvl)
	if err != nil || lvl == "" {
		parsed = slog.LevelDebug
		if env == "production" {
			parsed = slog.LevelInfo
		}
	}
	level.Set(parsed)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	defaultLogger = slog.New(handler)
}

// parses a level name (debug, info, warn, error), case-insensitive
func ParseLevel(lvl string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("invalid log level: %q", lvl)
}

// changes the minimum level of the default logger
func SetLevel(l slog.Level) {
	level.Set(l)
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// creates a logger with context
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs a fatal error with error and exits
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
