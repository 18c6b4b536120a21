// perft counts the leaf nodes of the legal move tree below a chess position.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	if err := runPerft(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the CLI log handler at the configured level.
func setupLogging(cfg *config.Config) {
	log.SetHandler(cli.New(cfg.Log.Writer))
	log.SetLevel(cfg.Log.ParsedLevel())
}

// runPerft validates cfg, counts the configured position and writes the
// totals to the configured output.
func runPerft(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var opts []perft.Option
	opts = append(opts, perft.WithWorkers(cfg.Perft.Workers))
	if cfg.Perft.UseCache {
		opts = append(opts, perft.WithCache(hashing.NewThreadSafeNodeCache(cfg.Perft.CacheSize)))
	}

	gs, err := engine.NewGameStateFromFEN(cfg.Perft.FEN)
	if err != nil {
		return err
	}

	first := cfg.Perft.Depth
	if cfg.Perft.Iterate {
		first = 1
	}

	w := output.NewWriter(cfg)
	for d := first; d <= cfg.Perft.Depth; d++ {
		log.WithFields(log.Fields{
			"fen":   cfg.Perft.FEN,
			"depth": d,
		}).Debug("starting perft")

		res, err := countDepth(cfg, gs, d, opts)
		if err != nil {
			return err
		}
		if err := w.WriteResult(res); err != nil {
			return err
		}
	}
	return w.Close()
}

// countDepth runs one depth, cross-checked when verification is on.
func countDepth(cfg *config.Config, gs *engine.GameState, depth int, opts []perft.Option) (perft.Result, error) {
	if !cfg.Perft.Verify {
		return perft.Run(gs, depth, opts...)
	}
	res, err := perft.Verify(cfg.Perft.FEN, depth, opts...)
	if err != nil {
		return res, err
	}
	log.WithField("depth", depth).Info("counts match the reference generator")
	return res, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move sequences of a given length from a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5\n")
	fmt.Fprintf(os.Stderr, "  perft -fen \"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1\" -depth 4 -divide\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 4 -workers 8 -cache -verify\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5 -iterate -format json\n")
}
