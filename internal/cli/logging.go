package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/bfhl/internal/core/config"
)

// setupLogging installs the default slog logger. Text output goes through
// stylelog/tint; json output uses the standard JSON handler for log shippers.
func setupLogging(cfg config.LoggingConfig, debug bool) {
	level := parseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}

	if cfg.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return
	}

	stylelog.InitDefault(&tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
