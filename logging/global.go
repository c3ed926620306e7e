package logging

import (
	"log/slog"
	"os"
)

type LoggingService struct {
	Logger *slog.Logger
}

var DefaultLoggingService *LoggingService

// fallback catches log calls made before InitLogger runs, such as config
// errors during startup. It emits everything so early failures are never
// swallowed.
var fallback = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

// InitLogger initializes the global logger instance
func InitLogger(level string, env string) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLogger(level, env),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// active returns the configured logger, or the fallback before init
func active() *slog.Logger {
	if DefaultLoggingService != nil && DefaultLoggingService.Logger != nil {
		return DefaultLoggingService.Logger
	}
	return fallback
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	active().Info(msg, args...)
}

func Error(msg string, args ...any) {
	active().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	active().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	active().Debug(msg, args...)
}
