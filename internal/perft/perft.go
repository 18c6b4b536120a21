// Package perft counts the leaf nodes of the legal move tree below a
// position. Node counts are the standard way to check a move generator:
// any missing or extra move at any depth changes the total.
package perft

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string // UCI text, e.g. "e2e4" or "e7e8q"
	Nodes uint64
}

// Result is the outcome of a perft run.
type Result struct {
	Depth   int
	Nodes   uint64
	Divide  []DivideEntry // Sorted by move text
	Elapsed time.Duration
}

type options struct {
	workers int
	cache   *hashing.ThreadSafeNodeCache
}

// Option configures Run.
type Option func(*options)

// WithWorkers splits the root moves across n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithCache reuses subtree counts of transposed positions.
func WithCache(cache *hashing.ThreadSafeNodeCache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// Count returns the number of leaf nodes depth plies below gs. gs is
// restored before Count returns.
func Count(gs *engine.GameState, depth int) uint64 {
	return count(gs, depth, nil)
}

// CountCached is Count with a transposition cache. The cache may be
// shared between goroutines.
func CountCached(gs *engine.GameState, depth int, cache *hashing.ThreadSafeNodeCache) uint64 {
	return count(gs, depth, cache)
}

func count(gs *engine.GameState, depth int, cache *hashing.ThreadSafeNodeCache) uint64 {
	if depth == 0 {
		return 1
	}

	var key uint64
	if cache != nil {
		key = hashing.Hash(gs)
		if nodes, ok := cache.Lookup(key, depth); ok {
			return nodes
		}
	}

	moves := gs.ValidMoves()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			gs.MakeMove(m)
			nodes += count(gs, depth-1, cache)
			gs.UndoMove()
		}
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes
}

// Divide returns the node count below each root move, sorted by move text.
func Divide(gs *engine.GameState, depth int) ([]DivideEntry, error) {
	res, err := Run(gs, depth)
	if err != nil {
		return nil, err
	}
	return res.Divide, nil
}

// Run counts depth plies below gs, one work item per root move. gs itself
// is only read: every item searches its own clone.
func Run(gs *engine.GameState, depth int, opts ...Option) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	moves := gs.ValidMoves()
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Index: i, Move: m, State: gs.Clone(), Depth: depth - 1}
	}

	cache := o.cache
	results := worker.Run(items, func(item worker.WorkItem) worker.ProcessResult {
		item.State.MakeMove(item.Move)
		nodes := count(item.State, item.Depth, cache)
		item.State.UndoMove()
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
	}, worker.WithWorkers(o.workers), worker.WithBufferSize(len(items)+1))

	res := Result{Depth: depth, Divide: make([]DivideEntry, 0, len(results))}
	for _, r := range results {
		if r.Error != nil {
			return Result{}, errors.Wrapf(r.Error, "move %s", r.Move.UCI())
		}
		log.WithFields(log.Fields{
			"move":  r.Move.UCI(),
			"nodes": r.Nodes,
		}).Debug("root move")
		res.Nodes += r.Nodes
		res.Divide = append(res.Divide, DivideEntry{Move: r.Move.UCI(), Nodes: r.Nodes})
	}
	slices.SortFunc(res.Divide, func(a, b DivideEntry) int { return strings.Compare(a.Move, b.Move) })
	res.Elapsed = time.Since(start)

	fields := log.Fields{
		"depth":   depth,
		"nodes":   res.Nodes,
		"moves":   len(moves),
		"workers": o.workers,
		"elapsed": res.Elapsed,
	}
	if cache != nil {
		fields["cache_entries"] = cache.Len()
		fields["cache_hits"] = cache.Hits()
	}
	log.WithFields(fields).Info("perft complete")
	return res, nil
}
