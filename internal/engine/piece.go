package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pseudoLegalMoves generates moves for every piece of the side to move in
// board-scan order. Pins from report restrict pinned pieces to their pin
// axis; king destinations are checked for safety. Checks are not resolved
// here and castling is generated separately.
func (gs *GameState) pseudoLegalMoves(report AttackReport) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := gs.board.Squares[row][col]
			if !chess.IsColour(piece, gs.sideToMove) {
				continue
			}
			moves = gs.pieceMoves(chess.Sq(row, col), chess.ExtractPiece(piece), report, moves)
		}
	}
	return moves
}

// pieceMoves dispatches on piece kind and appends that piece's moves.
func (gs *GameState) pieceMoves(from chess.Square, kind chess.Piece, report AttackReport, moves []chess.Move) []chess.Move {
	switch kind {
	case chess.Pawn:
		return gs.pawnMoves(from, report, moves)
	case chess.Knight:
		return gs.knightMoves(from, report, moves)
	case chess.Bishop:
		return gs.slidingMoves(from, chess.DiagonalDirections[:], report, moves)
	case chess.Rook:
		return gs.slidingMoves(from, chess.OrthogonalDirections[:], report, moves)
	case chess.Queen:
		moves = gs.slidingMoves(from, chess.DiagonalDirections[:], report, moves)
		return gs.slidingMoves(from, chess.OrthogonalDirections[:], report, moves)
	case chess.King:
		return gs.kingMoves(from, moves)
	}
	return moves
}

// alongPin reports whether a move in direction d keeps a piece on its pin
// axis. Unpinned pieces may move in any direction.
func alongPin(pinned bool, pinDir, d chess.Direction) bool {
	return !pinned || d == pinDir || d == pinDir.Opposite()
}

// knightMoves appends knight moves. A pinned knight can never stay on its
// pin line, so it has none.
func (gs *GameState) knightMoves(from chess.Square, report AttackReport, moves []chess.Move) []chess.Move {
	if _, pinned := report.PinFor(from); pinned {
		return moves
	}
	for _, offset := range chess.KnightOffsets {
		to := from.Step(offset, 1)
		if !to.OnBoard() || chess.IsColour(gs.board.Get(to), gs.sideToMove) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, &gs.board, chess.Ordinary))
	}
	return moves
}

// slidingMoves appends ray moves for bishops, rooks and queens.
func (gs *GameState) slidingMoves(from chess.Square, dirs []chess.Direction, report AttackReport, moves []chess.Move) []chess.Move {
	pinDir, pinned := report.PinFor(from)
	enemy := gs.sideToMove.Opposite()

	for _, dir := range dirs {
		if !alongPin(pinned, pinDir, dir) {
			continue
		}
		for dist := 1; dist < chess.BoardSize; dist++ {
			to := from.Step(dir, dist)
			target := gs.board.Get(to)
			if target == chess.Off {
				break
			}
			if target == chess.Empty {
				moves = append(moves, chess.NewMove(from, to, &gs.board, chess.Ordinary))
				continue
			}
			if chess.IsColour(target, enemy) {
				moves = append(moves, chess.NewMove(from, to, &gs.board, chess.Ordinary))
			}
			break // Blocked
		}
	}
	return moves
}

// kingMoves appends king steps onto squares that are not ally-occupied
// and not attacked.
func (gs *GameState) kingMoves(from chess.Square, moves []chess.Move) []chess.Move {
	for _, offset := range chess.KingOffsets {
		to := from.Step(offset, 1)
		if !to.OnBoard() || chess.IsColour(gs.board.Get(to), gs.sideToMove) {
			continue
		}
		if kingSafeAt(&gs.board, to, gs.sideToMove) {
			moves = append(moves, chess.NewMove(from, to, &gs.board, chess.Ordinary))
		}
	}
	return moves
}
