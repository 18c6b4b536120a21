package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// squareSet is a membership table indexed by Square.Index.
type squareSet [chess.BoardSize * chess.BoardSize]bool

func (s *squareSet) add(sq chess.Square) { s[sq.Index()] = true }

func (s *squareSet) has(sq chess.Square) bool { return s[sq.Index()] }

// checkResolution returns the squares a non-king move may land on to answer
// check. A knight or pawn check can only be answered by capturing the
// attacker; a slider check can also be blocked anywhere on the ray between
// king and attacker.
func checkResolution(board *chess.Board, king chess.Square, check Check) squareSet {
	var squares squareSet

	kind := chess.ExtractPiece(board.Get(check.Square))
	if kind == chess.Knight || kind == chess.Pawn {
		squares.add(check.Square)
		return squares
	}

	for dist := 1; dist < chess.BoardSize; dist++ {
		sq := king.Step(check.Dir, dist)
		if !sq.OnBoard() {
			break
		}
		squares.add(sq)
		if sq == check.Square {
			break
		}
	}
	return squares
}
