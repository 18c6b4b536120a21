package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// enPassantTarget is the optional square a pawn may capture onto en passant.
type enPassantTarget struct {
	square chess.Square
	ok     bool
}

// GameState is a position together with everything needed to undo the
// moves that led to it.
//
// The castle-rights and en-passant logs always hold one more entry than
// the move log: the first entry is the state before any move was made.
// A GameState is not safe for concurrent use; use Clone to hand
// independent copies to other goroutines.
type GameState struct {
	board      chess.Board
	sideToMove chess.Colour
	whiteKing  chess.Square
	blackKing  chess.Square

	castleRights chess.CastleRights
	enPassant    enPassantTarget

	inCheck   bool
	checkmate bool
	stalemate bool

	moveLog         []chess.Move
	castleRightsLog []chess.CastleRights
	enPassantLog    []enPassantTarget
}

// NewGameState returns a game in the standard starting position.
func NewGameState() *GameState {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	gs, err := NewGameStateFromBoard(*board, chess.White, chess.AllCastleRights(), chess.NoSquare)
	if err != nil {
		panic(err) // The initial position always has both kings
	}
	return gs
}

// NewGameStateFromBoard builds a game from an arbitrary position. ep is
// the en passant target, or chess.NoSquare for none; a target must sit
// just behind an enemy pawn that could have double-pushed. The board must
// hold exactly one king of each colour.
func NewGameStateFromBoard(board chess.Board, side chess.Colour, rights chess.CastleRights, ep chess.Square) (*GameState, error) {
	gs := &GameState{
		board:        board,
		sideToMove:   side,
		castleRights: rights,
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king, count := chess.NoSquare, 0
		piece := chess.MakeColouredPiece(colour, chess.King)
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				if board.Squares[row][col] == piece {
					king = chess.Sq(row, col)
					count++
				}
			}
		}
		if count != 1 {
			return nil, fmt.Errorf("%d %s kings: %w", count, colour, errors.ErrInvalidPosition)
		}
		gs.setKingSquare(colour, king)
	}

	if ep != chess.NoSquare {
		if err := checkEnPassantTarget(&board, side, ep); err != nil {
			return nil, err
		}
		gs.enPassant = enPassantTarget{square: ep, ok: true}
	}

	gs.castleRightsLog = []chess.CastleRights{gs.castleRights}
	gs.enPassantLog = []enPassantTarget{gs.enPassant}
	gs.inCheck = IsInCheck(&gs.board, side)
	return gs, nil
}

// checkEnPassantTarget returns an error unless ep could follow a double push by
// the opponent of side: it lies on the skipped rank, is empty, and has an
// enemy pawn on the square the push landed on.
func checkEnPassantTarget(board *chess.Board, side chess.Colour, ep chess.Square) error {
	enemy := side.Opposite()
	skippedRow := chess.PawnStartRow(enemy) + chess.PawnDirection(enemy)
	if !ep.OnBoard() || ep.Row != skippedRow {
		return fmt.Errorf("en passant target %s not on the skipped rank: %w", ep, errors.ErrInvalidPosition)
	}
	if !board.IsEmpty(ep) {
		return fmt.Errorf("en passant target %s is occupied: %w", ep, errors.ErrInvalidPosition)
	}
	pushed := ep.Offset(chess.PawnDirection(enemy), 0)
	if board.Get(pushed) != chess.MakeColouredPiece(enemy, chess.Pawn) {
		return fmt.Errorf("no %s pawn on %s for en passant target %s: %w", enemy, pushed, ep, errors.ErrInvalidPosition)
	}
	return nil
}

// Board returns a copy of the current board.
func (gs *GameState) Board() chess.Board {
	return gs.board
}

// SideToMove returns the colour whose turn it is.
func (gs *GameState) SideToMove() chess.Colour {
	return gs.sideToMove
}

// KingSquare returns the square of colour's king.
func (gs *GameState) KingSquare(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return gs.whiteKing
	}
	return gs.blackKing
}

func (gs *GameState) setKingSquare(colour chess.Colour, sq chess.Square) {
	if colour == chess.White {
		gs.whiteKing = sq
	} else {
		gs.blackKing = sq
	}
}

// CastleRights returns the current castling rights.
func (gs *GameState) CastleRights() chess.CastleRights {
	return gs.castleRights
}

// EnPassantTarget returns the square a pawn may capture onto en passant.
func (gs *GameState) EnPassantTarget() (chess.Square, bool) {
	if !gs.enPassant.ok {
		return chess.NoSquare, false
	}
	return gs.enPassant.square, true
}

// MoveLog returns the moves made so far, oldest first.
func (gs *GameState) MoveLog() []chess.Move {
	log := make([]chess.Move, len(gs.moveLog))
	copy(log, gs.moveLog)
	return log
}

// Clone returns an independent deep copy, history included.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.moveLog = append([]chess.Move(nil), gs.moveLog...)
	c.castleRightsLog = append([]chess.CastleRights(nil), gs.castleRightsLog...)
	c.enPassantLog = append([]enPassantTarget(nil), gs.enPassantLog...)
	return &c
}

// Snapshot is a comparable picture of everything make/undo must restore.
type Snapshot struct {
	Board        chess.Board
	SideToMove   chess.Colour
	WhiteKing    chess.Square
	BlackKing    chess.Square
	CastleRights chess.CastleRights
	EnPassant    chess.Square
	Moves        int
}

// Snapshot captures the current position state.
func (gs *GameState) Snapshot() Snapshot {
	ep, _ := gs.EnPassantTarget()
	return Snapshot{
		Board:        gs.board,
		SideToMove:   gs.sideToMove,
		WhiteKing:    gs.whiteKing,
		BlackKing:    gs.blackKing,
		CastleRights: gs.castleRights,
		EnPassant:    ep,
		Moves:        len(gs.moveLog),
	}
}

// FindMove returns the legal move from one square to another, if any.
// Promotions are always to a queen, so the squares identify the move.
func (gs *GameState) FindMove(from, to chess.Square) (chess.Move, bool) {
	for _, m := range gs.ValidMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return chess.Move{}, false
}
