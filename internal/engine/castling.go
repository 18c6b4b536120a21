package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Castling columns on the home row.
const (
	kingCol          = 4
	kingSideRookCol  = 7
	queenSideRookCol = 0
)

// castleMoves returns the castling moves available to the side to move.
// The caller has already established that the king is not in check.
func (gs *GameState) castleMoves(moves []chess.Move) []chess.Move {
	colour := gs.sideToMove
	king := gs.KingSquare(colour)
	home := chess.HomeRow(colour)
	if king != chess.Sq(home, kingCol) {
		return moves // Rights from setup input without the king at home
	}

	if gs.castleRights.KingSide(colour) && gs.hasHomeRook(colour, kingSideRookCol) &&
		gs.castlePathClear(home, []int{5, 6}, []int{5, 6}) {
		moves = append(moves, chess.NewMove(king, chess.Sq(home, 6), &gs.board, chess.Castle))
	}
	if gs.castleRights.QueenSide(colour) && gs.hasHomeRook(colour, queenSideRookCol) &&
		gs.castlePathClear(home, []int{3, 2, 1}, []int{3, 2}) {
		moves = append(moves, chess.NewMove(king, chess.Sq(home, 2), &gs.board, chess.Castle))
	}
	return moves
}

// hasHomeRook reports whether colour still has a rook on the given corner.
func (gs *GameState) hasHomeRook(colour chess.Colour, col int) bool {
	return gs.board.Get(chess.Sq(chess.HomeRow(colour), col)) == chess.MakeColouredPiece(colour, chess.Rook)
}

// castlePathClear checks that every column in empty is vacant and that the
// king would be safe on every column in transit.
func (gs *GameState) castlePathClear(row int, empty, transit []int) bool {
	for _, col := range empty {
		if !gs.board.IsEmpty(chess.Sq(row, col)) {
			return false
		}
	}
	for _, col := range transit {
		if !kingSafeAt(&gs.board, chess.Sq(row, col), gs.sideToMove) {
			return false
		}
	}
	return true
}

// castleRookSquares returns the rook's origin and destination for a
// castling king move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.To().Row
	if m.IsKingSideCastle() {
		return chess.Sq(row, m.To().Col+1), chess.Sq(row, m.To().Col-1)
	}
	return chess.Sq(row, m.To().Col-2), chess.Sq(row, m.To().Col+1)
}

// revokeCastleRights returns rights updated for m: a king move clears both
// of the mover's rights, a rook leaving its home corner clears that side,
// and capturing a rook on its home corner clears the opponent's side.
func revokeCastleRights(rights chess.CastleRights, m chess.Move) chess.CastleRights {
	mover := chess.ExtractColour(m.PieceMoved())

	switch chess.ExtractPiece(m.PieceMoved()) {
	case chess.King:
		rights = rights.WithoutKingSide(mover).WithoutQueenSide(mover)
	case chess.Rook:
		rights = revokeForRookSquare(rights, mover, m.From())
	}

	if chess.ExtractPiece(m.PieceCaptured()) == chess.Rook {
		rights = revokeForRookSquare(rights, mover.Opposite(), m.To())
	}
	return rights
}

// revokeForRookSquare clears the owner's right tied to the corner sq, if
// sq is one of the owner's rook home squares.
func revokeForRookSquare(rights chess.CastleRights, owner chess.Colour, sq chess.Square) chess.CastleRights {
	if sq.Row != chess.HomeRow(owner) {
		return rights
	}
	switch sq.Col {
	case kingSideRookCol:
		return rights.WithoutKingSide(owner)
	case queenSideRookCol:
		return rights.WithoutQueenSide(owner)
	}
	return rights
}
