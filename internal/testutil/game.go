package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustGameState sets up a game from FEN and calls t.Fatal if the FEN is
// rejected. Use this in test setup where a bad position should abort the test.
func MustGameState(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	gs, err := engine.NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to set up position %q: %v", fen, err)
	}
	return gs
}

// PlayMoves plays a sequence of moves given in long algebraic form
// ("e2e4") and calls t.Fatal if any of them is not legal.
func PlayMoves(t testing.TB, gs *engine.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if len(text) != 4 {
			t.Fatalf("move %q: want four characters", text)
		}
		from, err := chess.ParseSquare(text[:2])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		to, err := chess.ParseSquare(text[2:])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		m, ok := gs.FindMove(from, to)
		if !ok {
			t.Fatalf("move %q is not legal in this position", text)
		}
		gs.MakeMove(m)
	}
}

// MoveStrings renders moves in their UCI form, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}
