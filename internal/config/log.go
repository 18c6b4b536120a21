package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig holds settings related to diagnostic logging.
type LogConfig struct {
	// Level is an apex/log level name: debug, info, warn, error or fatal.
	Level string

	// Writer receives the log lines.
	Writer io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Writer: os.Stderr,
	}
}

// Validate checks that the level name is known.
func (l *LogConfig) Validate() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// ParsedLevel returns the apex/log level, defaulting to info.
func (l *LogConfig) ParsedLevel() log.Level {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
