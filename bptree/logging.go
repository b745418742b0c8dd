package bptree

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging installs a TextHandler as the default slog logger and
// sets its level from the COLLECTIONS_SORTED_LOG_LEVEL environment
// variable, defaulting to Info. Call this at application startup to see
// structural tracing (split/merge/root promotion) at Debug level.
func ConfigureLogging() {
	logLevel.Set(slog.LevelInfo)

	switch os.Getenv("COLLECTIONS_SORTED_LOG_LEVEL") {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel overrides the level set by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
