package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"
)

// LoggingConfig is the shape of the optional LOG_CFG yaml file.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// NewLogger builds the process logger. When LOG_CFG points at a readable
// yaml file its level/format win; otherwise info-level text logging.
func NewLogger(path string) *slog.Logger {
	lc := LoggingConfig{Level: "info", Format: "text"}

	if path != "" {
		if f, err := os.Open(path); err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&lc); err != nil {
				slog.Warn("unable to parse logging config, using defaults", "path", path, "error", err)
			}
		}
	}

	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
