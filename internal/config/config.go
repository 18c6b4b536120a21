// Package config provides configuration for the perft tool.
package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds the settings of one perft run.
type Config struct {
	Perft  *PerftConfig
	Output *OutputConfig
	Log    *LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:  NewPerftConfig(),
		Output: NewOutputConfig(),
		Log:    NewLogConfig(),
	}
}

// SetOutput sets the stream the node counts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.Writer = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Perft == nil || c.Output == nil || c.Log == nil {
		return fmt.Errorf("missing sub-configuration: %w", errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// PerftConfig holds the search settings.
type PerftConfig struct {
	// FEN is the root position.
	FEN string

	// Depth is the number of plies to count.
	Depth int

	// Divide prints the count below each root move.
	Divide bool

	// Iterate counts every depth from 1 up to Depth.
	Iterate bool

	// Workers is the number of goroutines splitting the root moves.
	Workers int

	// Verify checks each count against the reference generator.
	Verify bool

	// UseCache enables the transposition node cache.
	UseCache bool

	// CacheSize bounds the node cache; 0 means unlimited.
	CacheSize int
}

// MaxDepth is the deepest search the tool accepts.
const MaxDepth = 10

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:     engine.InitialFEN,
		Depth:   3,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.FEN == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("negative cache size (%d): %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
