package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the terminal classification of a position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// ValidMoves returns every legal move for the side to move in board-scan
// order, castling last. It also refreshes the check, checkmate and
// stalemate flags.
func (gs *GameState) ValidMoves() []chess.Move {
	king := gs.KingSquare(gs.sideToMove)
	report := AnalyzeAttacks(&gs.board, king, gs.sideToMove)
	gs.inCheck = report.InCheck

	var moves []chess.Move
	switch {
	case len(report.Checks) > 1:
		// Double check: only the king can move
		moves = gs.kingMoves(king, nil)

	case len(report.Checks) == 1:
		moves = filterCheckEvasions(gs.pseudoLegalMoves(report), &gs.board, king, report.Checks[0])

	default:
		moves = gs.castleMoves(gs.pseudoLegalMoves(report))
	}

	gs.checkmate = len(moves) == 0 && gs.inCheck
	gs.stalemate = len(moves) == 0 && !gs.inCheck
	return moves
}

// filterCheckEvasions keeps king moves and the moves that capture or block
// the single checking piece. An en passant capture of a checking pawn is
// kept even though it lands beside the attacker rather than on it.
func filterCheckEvasions(moves []chess.Move, board *chess.Board, king chess.Square, check Check) []chess.Move {
	resolution := checkResolution(board, king, check)

	legal := moves[:0]
	for _, m := range moves {
		switch {
		case chess.ExtractPiece(m.PieceMoved()) == chess.King:
		case resolution.has(m.To()):
		case m.IsEnPassant() && m.CapturedSquare() == check.Square:
		default:
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (gs *GameState) HasLegalMoves() bool {
	return len(gs.ValidMoves()) > 0
}

// InCheck reports whether the side to move is in check.
func (gs *GameState) InCheck() bool {
	return gs.inCheck
}

// Checkmate reports the flag set by the latest ValidMoves call.
func (gs *GameState) Checkmate() bool {
	return gs.checkmate
}

// Stalemate reports the flag set by the latest ValidMoves call.
func (gs *GameState) Stalemate() bool {
	return gs.stalemate
}

// Status classifies the position as of the latest ValidMoves call.
func (gs *GameState) Status() Status {
	switch {
	case gs.checkmate:
		return Checkmate
	case gs.stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}
