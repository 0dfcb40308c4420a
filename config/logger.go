package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Production emits JSON lines for log
// aggregation; every other environment emits human-readable text. LOG_LEVEL
// accepts the slog level names (debug, info, warn, error) in any case and
// defaults to info.
func NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
