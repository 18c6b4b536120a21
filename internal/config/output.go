package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat represents the format node counts are written in.
type OutputFormat int

const (
	Text OutputFormat = iota // perft(n) = count lines
	JSON                     // One JSON document per run
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// Format selects text or JSON output.
	Format OutputFormat

	// Writer receives the node counts; log lines go to LogConfig.Writer.
	Writer io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
		Writer: os.Stdout,
	}
}

// Validate checks that the format is known and a writer is set.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Writer == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	return nil
}
