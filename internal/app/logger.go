package app

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide slog.Logger. JSON output is used for
// aggregated environments; anything else gets the readable text handler.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
