package perft

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Reference counts leaf nodes with the dragontoothmg generator. Only
// queen promotions are followed, matching this module's promotion policy.
func Reference(fen string, depth int) (uint64, error) {
	entries, err := ReferenceDivide(fen, depth)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	return nodes, nil
}

// ReferenceDivide is Divide computed with the dragontoothmg generator.
func ReferenceDivide(fen string, depth int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	// dragontoothmg does not report malformed input, so parse it here first
	if _, err := engine.NewGameStateFromFEN(fen); err != nil {
		return nil, err
	}

	board := dragontoothmg.ParseFen(completeFEN(fen))
	var entries []DivideEntry
	for _, m := range followedMoves(&board) {
		unapply := board.Apply(m)
		entries = append(entries, DivideEntry{Move: m.String(), Nodes: referenceCount(&board, depth-1)})
		unapply()
	}
	slices.SortFunc(entries, func(a, b DivideEntry) int { return strings.Compare(a.Move, b.Move) })
	return entries, nil
}

// completeFEN fills in the optional trailing fields, which dragontoothmg
// expects to be present.
func completeFEN(fen string) string {
	fields := strings.Fields(fen)
	defaults := []string{"", "w", "-", "-", "0", "1"}
	for len(fields) < len(defaults) {
		fields = append(fields, defaults[len(fields)])
	}
	return strings.Join(fields, " ")
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := followedMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		unapply()
	}
	return nodes
}

// followedMoves drops the underpromotions from the legal moves of b.
func followedMoves(b *dragontoothmg.Board) []dragontoothmg.Move {
	moves := b.GenerateLegalMoves()
	kept := moves[:0]
	for _, m := range moves {
		if p := m.Promote(); p != 0 && p != dragontoothmg.Queen {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// Verify runs perft on fen and compares every root move against the
// reference generator. A disagreement returns an error wrapping
// ErrPerftMismatch that names the first differing move.
func Verify(fen string, depth int, opts ...Option) (Result, error) {
	gs, err := engine.NewGameStateFromFEN(fen)
	if err != nil {
		return Result{}, err
	}
	res, err := Run(gs, depth, opts...)
	if err != nil {
		return Result{}, err
	}
	ref, err := ReferenceDivide(fen, depth)
	if err != nil {
		return Result{}, err
	}
	if err := compareDivide(res.Divide, ref); err != nil {
		return res, errors.Wrapf(err, "depth %d", depth)
	}
	return res, nil
}

// compareDivide reports the first move whose count differs, or which only
// one side generated. Both inputs must be sorted by move text.
func compareDivide(got, want []DivideEntry) error {
	i, j := 0, 0
	for i < len(got) || j < len(want) {
		switch {
		case j == len(want) || (i < len(got) && got[i].Move < want[j].Move):
			return fmt.Errorf("extra move %s: %w", got[i].Move, errors.ErrPerftMismatch)
		case i == len(got) || want[j].Move < got[i].Move:
			return fmt.Errorf("missing move %s: %w", want[j].Move, errors.ErrPerftMismatch)
		case got[i].Nodes != want[j].Nodes:
			return fmt.Errorf("move %s: %d nodes, reference %d: %w",
				got[i].Move, got[i].Nodes, want[j].Nodes, errors.ErrPerftMismatch)
		}
		i++
		j++
	}
	return nil
}
