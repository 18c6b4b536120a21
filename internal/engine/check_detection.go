package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Pin records an ally piece standing between its king and an aligned
// enemy slider. Dir points from the king towards the pinned piece.
type Pin struct {
	Square chess.Square
	Dir    chess.Direction
}

// Check records an enemy piece attacking the king. For sliders, pawns and
// kings Dir points from the king towards the attacker; for knights it is
// the knight offset and only identifies the check.
type Check struct {
	Square chess.Square
	Dir    chess.Direction
}

// AttackReport is the result of analysing one king square.
type AttackReport struct {
	InCheck bool
	Pins    []Pin
	Checks  []Check
}

// PinFor returns the pin direction of the piece on sq, if it is pinned.
func (r AttackReport) PinFor(sq chess.Square) (chess.Direction, bool) {
	for _, pin := range r.Pins {
		if pin.Square == sq {
			return pin.Dir, true
		}
	}
	return chess.Direction{}, false
}

// rayDirections lists the orthogonal rays first, then the diagonals.
var rayDirections = [8]chess.Direction{
	chess.OrthogonalDirections[0], chess.OrthogonalDirections[1],
	chess.OrthogonalDirections[2], chess.OrthogonalDirections[3],
	chess.DiagonalDirections[0], chess.DiagonalDirections[1],
	chess.DiagonalDirections[2], chess.DiagonalDirections[3],
}

// AnalyzeAttacks walks the eight rays and the knight offsets around king
// and reports the checks against it and the ally pieces pinned to it.
//
// king need not hold the ally king: callers pass a hypothetical square to
// ask whether the king would be safe there. The ally king met on a ray is
// treated as transparent so that a king stepping back along a checking
// line is still seen as attacked. The board is never modified.
func AnalyzeAttacks(board *chess.Board, king chess.Square, ally chess.Colour) AttackReport {
	var report AttackReport

	for _, dir := range rayDirections {
		var possiblePin Pin
		havePin := false

		for dist := 1; dist < chess.BoardSize; dist++ {
			sq := king.Step(dir, dist)
			piece := board.Get(sq)
			if piece == chess.Off {
				break
			}
			if piece == chess.Empty {
				continue
			}

			kind := chess.ExtractPiece(piece)
			if chess.ExtractColour(piece) == ally {
				if kind == chess.King {
					continue
				}
				if havePin {
					break // Second ally piece: no pin on this ray
				}
				possiblePin = Pin{Square: sq, Dir: dir}
				havePin = true
				continue
			}

			if attacksAlongRay(kind, ally.Opposite(), dir, dist) {
				if havePin {
					report.Pins = append(report.Pins, possiblePin)
				} else {
					report.InCheck = true
					report.Checks = append(report.Checks, Check{Square: sq, Dir: dir})
				}
			}
			break
		}
	}

	knight := chess.MakeColouredPiece(ally.Opposite(), chess.Knight)
	for _, offset := range chess.KnightOffsets {
		sq := king.Step(offset, 1)
		if board.Get(sq) == knight {
			report.InCheck = true
			report.Checks = append(report.Checks, Check{Square: sq, Dir: offset})
		}
	}

	return report
}

// attacksAlongRay reports whether an enemy piece of the given kind, found
// dist squares from the king along dir, attacks the king.
func attacksAlongRay(kind chess.Piece, enemy chess.Colour, dir chess.Direction, dist int) bool {
	orthogonal := dir.DRow == 0 || dir.DCol == 0

	switch kind {
	case chess.Rook:
		return orthogonal
	case chess.Bishop:
		return !orthogonal
	case chess.Queen:
		return true
	case chess.King:
		return dist == 1
	case chess.Pawn:
		// The pawn must sit one step diagonally behind the king from its
		// own point of view, i.e. capture forward onto the king.
		return dist == 1 && !orthogonal && dir.DRow == -chess.PawnDirection(enemy)
	}
	return false
}

// SquareAttacked reports whether a king of colour ally standing on sq
// would be in check.
func SquareAttacked(board *chess.Board, sq chess.Square, ally chess.Colour) bool {
	return AnalyzeAttacks(board, sq, ally).InCheck
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return SquareAttacked(board, king, colour)
}

// kingSafeAt reports whether the ally king may stand on to. It is the pure
// replacement for relocating the king, re-analysing and moving it back.
func kingSafeAt(board *chess.Board, to chess.Square, ally chess.Colour) bool {
	return !SquareAttacked(board, to, ally)
}
