package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MakeMove plays m, which must come from the latest ValidMoves call on
// this state. The move is not re-validated.
func (gs *GameState) MakeMove(m chess.Move) {
	colour := gs.sideToMove
	from, to := m.From(), m.To()

	gs.board.Set(from, chess.Empty)
	piece := m.PieceMoved()
	if m.IsPawnPromotion() {
		piece = chess.MakeColouredPiece(colour, chess.Queen)
	}
	gs.board.Set(to, piece)

	switch chess.ExtractPiece(m.PieceMoved()) {
	case chess.King:
		gs.setKingSquare(colour, to)
	case chess.Pawn:
		if m.IsEnPassant() {
			gs.board.Set(m.CapturedSquare(), chess.Empty)
		}
	}

	// A double push leaves the skipped square as the en passant target
	gs.enPassant = enPassantTarget{}
	if chess.ExtractPiece(m.PieceMoved()) == chess.Pawn && abs(to.Row-from.Row) == 2 {
		gs.enPassant = enPassantTarget{square: chess.Sq((from.Row+to.Row)/2, from.Col), ok: true}
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.Set(rookTo, gs.board.Get(rookFrom))
		gs.board.Set(rookFrom, chess.Empty)
	}

	gs.castleRights = revokeCastleRights(gs.castleRights, m)

	gs.moveLog = append(gs.moveLog, m)
	gs.castleRightsLog = append(gs.castleRightsLog, gs.castleRights)
	gs.enPassantLog = append(gs.enPassantLog, gs.enPassant)
	gs.sideToMove = colour.Opposite()
	gs.refreshCheck()
}

// UndoMove takes back the last move. It does nothing when no move has been
// made. The terminal flags are cleared until the next ValidMoves call.
func (gs *GameState) UndoMove() {
	n := len(gs.moveLog)
	if n == 0 {
		return
	}
	m := gs.moveLog[n-1]
	gs.moveLog = gs.moveLog[:n-1]
	colour := chess.ExtractColour(m.PieceMoved())

	gs.board.Set(m.From(), m.PieceMoved())
	gs.board.Set(m.To(), m.PieceCaptured())
	if m.IsEnPassant() {
		gs.board.Set(m.To(), chess.Empty)
		gs.board.Set(m.CapturedSquare(), m.PieceCaptured())
	}

	if chess.ExtractPiece(m.PieceMoved()) == chess.King {
		gs.setKingSquare(colour, m.From())
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.Set(rookFrom, gs.board.Get(rookTo))
		gs.board.Set(rookTo, chess.Empty)
	}

	gs.castleRightsLog = gs.castleRightsLog[:n]
	gs.castleRights = gs.castleRightsLog[n-1]
	gs.enPassantLog = gs.enPassantLog[:n]
	gs.enPassant = gs.enPassantLog[n-1]

	gs.sideToMove = colour
	gs.refreshCheck()
}

// refreshCheck recomputes the check flag for the side to move and clears
// the terminal flags, which only ValidMoves may set.
func (gs *GameState) refreshCheck() {
	gs.inCheck = SquareAttacked(&gs.board, gs.KingSquare(gs.sideToMove), gs.sideToMove)
	gs.checkmate = false
	gs.stalemate = false
}
