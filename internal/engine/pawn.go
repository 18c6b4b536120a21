package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves appends pushes, captures and en passant captures for the pawn
// on from. Promotion is flagged by the Move itself.
func (gs *GameState) pawnMoves(from chess.Square, report AttackReport, moves []chess.Move) []chess.Move {
	colour := gs.sideToMove
	enemy := colour.Opposite()
	dir := chess.PawnDirection(colour)
	pinDir, pinned := report.PinFor(from)

	// Forward pushes
	one := from.Offset(dir, 0)
	if gs.board.IsEmpty(one) && alongPin(pinned, pinDir, chess.Direction{DRow: dir}) {
		moves = append(moves, chess.NewMove(from, one, &gs.board, chess.Ordinary))
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(colour) && gs.board.IsEmpty(two) {
			moves = append(moves, chess.NewMove(from, two, &gs.board, chess.Ordinary))
		}
	}

	// Captures
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() || !alongPin(pinned, pinDir, chess.Direction{DRow: dir, DCol: dc}) {
			continue
		}
		if chess.IsColour(gs.board.Get(to), enemy) {
			moves = append(moves, chess.NewMove(from, to, &gs.board, chess.Ordinary))
		} else if gs.enPassant.ok && to == gs.enPassant.square && gs.enPassantAllowed(from, to) {
			moves = append(moves, chess.NewMove(from, to, &gs.board, chess.EnPassant))
		}
	}
	return moves
}

// enPassantAllowed rejects en passant captures that would uncover the
// king once both pawns leave their row or the captured pawn leaves its
// diagonal.
func (gs *GameState) enPassantAllowed(from, to chess.Square) bool {
	colour := gs.sideToMove
	king := gs.KingSquare(colour)
	if enPassantSkewered(&gs.board, king, from, to.Col, colour.Opposite()) {
		return false
	}
	return !enPassantExposesKing(&gs.board, king, from, to, colour)
}

// enPassantSkewered handles the rank case: the king shares a row with the
// capturing pawn and an enemy rook or queen waits beyond the two pawns.
// The segment between king and pawns ("inside") and the segment beyond
// them ("outside") are scanned; the capture is refused only when an
// attacker is found outside with nothing in between.
func enPassantSkewered(board *chess.Board, king, from chess.Square, capturedCol int, enemy chess.Colour) bool {
	if king.Row != from.Row {
		return false
	}
	row := from.Row
	near, far := from.Col, capturedCol
	if abs(capturedCol-king.Col) < abs(from.Col-king.Col) {
		near, far = capturedCol, from.Col
	}
	step := sign(near - king.Col)

	for col := king.Col + step; col != near; col += step {
		if !board.IsEmpty(chess.Sq(row, col)) {
			return false // Blocker inside
		}
	}

	for col := far + step; col >= 0 && col < chess.BoardSize; col += step {
		piece := board.Get(chess.Sq(row, col))
		if piece == chess.Empty {
			continue
		}
		if chess.IsColour(piece, enemy) {
			kind := chess.ExtractPiece(piece)
			return kind == chess.Rook || kind == chess.Queen
		}
		return false // Blocker outside
	}
	return false
}

// enPassantExposesKing plays the capture on a scratch board and checks the
// king. It catches the diagonal case the rank scan cannot see, where the
// captured pawn was the only piece between the king and a bishop or queen.
func enPassantExposesKing(board *chess.Board, king, from, to chess.Square, colour chess.Colour) bool {
	scratch := *board
	scratch.Set(to, scratch.Get(from))
	scratch.Set(from, chess.Empty)
	scratch.Set(chess.Sq(from.Row, to.Col), chess.Empty)
	return SquareAttacked(&scratch, king, colour)
}
