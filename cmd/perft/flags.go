// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Position and search
	fenString = flag.String("fen", engine.InitialFEN, "Root position in FEN")
	depth     = flag.Int("depth", 3, "Number of plies to count")
	divide    = flag.Bool("divide", false, "Print the node count below each root move")
	iterate   = flag.Bool("iterate", false, "Count every depth from 1 up to -depth")
	workers   = flag.Int("workers", 1, "Number of goroutines splitting the root moves")

	// Checking
	verify = flag.Bool("verify", false, "Cross-check every root move against the dragontoothmg generator")

	// Transposition cache
	useCache  = flag.Bool("cache", false, "Reuse counts of transposed positions")
	cacheSize = flag.Int("cache-size", 0, "Maximum cache entries (0 = unlimited)")

	// Output
	outputFormat = flag.String("format", "text", "Output format: text, json")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySearchFlags(cfg)
	applyCacheFlags(cfg)
	cfg.Log.Level = *logLevel
	return applyOutputFlags(cfg)
}

func applySearchFlags(cfg *config.Config) {
	cfg.Perft.FEN = *fenString
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Iterate = *iterate
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
}

func applyCacheFlags(cfg *config.Config) {
	cfg.Perft.UseCache = *useCache || *cacheSize > 0
	cfg.Perft.CacheSize = *cacheSize
}

func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}
