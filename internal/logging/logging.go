// Package logging builds the zap logger used by the booking form binaries.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// Config holds logging configuration.
type Config struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"` // "json" or "console"
	OutputPath  string `mapstructure:"output_path"`
	Development bool   `mapstructure:"development"`
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(strings.TrimSpace(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if strings.EqualFold(cfg.Format, "console") {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	if cfg.OutputPath != "" {
		zapConfig.OutputPaths = []string{cfg.OutputPath}
	}

	return zapConfig.Build(zap.Fields(zap.String("service", "bookingform")))
}

// Must is New for callers that cannot continue without a logger. It falls
// back to a no-op logger rather than panicking.
func Must(cfg Config) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
