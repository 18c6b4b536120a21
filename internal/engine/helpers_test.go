package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Positions shared by several tests.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	castlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

func mustFEN(t testing.TB, fen string) *GameState {
	t.Helper()
	gs, err := NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameStateFromFEN(%q) failed: %v", fen, err)
	}
	return gs
}

// uciSet returns the sorted UCI strings of moves.
func uciSet(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	sort.Strings(out)
	return out
}

// uciStrings sorts a copy of moves and never returns nil.
func uciStrings(moves []string) []string {
	out := append([]string{}, moves...)
	sort.Strings(out)
	return out
}

func containsUCI(moves []chess.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}

func mustMove(t testing.TB, gs *GameState, uci string) chess.Move {
	t.Helper()
	m, ok := gs.FindMove(chess.MustSquare(uci[:2]), chess.MustSquare(uci[2:4]))
	if !ok {
		t.Fatalf("move %s not legal in\n%s", uci, gs.board.String())
	}
	return m
}

func play(t testing.TB, gs *GameState, moves ...string) {
	t.Helper()
	for _, uci := range moves {
		gs.MakeMove(mustMove(t, gs, uci))
	}
}

// perft counts leaf nodes using make/undo.
func perft(gs *GameState, depth int) uint64 {
	moves := gs.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		gs.MakeMove(m)
		nodes += perft(gs, depth-1)
		gs.UndoMove()
	}
	return nodes
}
