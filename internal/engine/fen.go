// Package engine implements legal move generation, move application and
// terminal detection on top of the chess package's board and moves.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewGameStateFromFEN sets up a game from a FEN string. Only the
// placement field is required; missing side, castling and en passant
// fields default to White, none and none. The clock fields are ignored.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	ep, err := parseEnPassant(parts)
	if err != nil {
		return nil, err
	}

	if ep != chess.NoSquare {
		if err := checkEnPassantTarget(board, side, ep); err != nil {
			return nil, &errors.FENError{Err: err, Field: "en passant", Value: parts[3]}
		}
	}

	gs, err := NewGameStateFromBoard(*board, side, rights, ep)
	if err != nil {
		return nil, &errors.FENError{Err: err, Field: "placement", Value: parts[0]}
	}
	return gs, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: string(c)}
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(row, col), chess.MakeColouredPiece(colour, piece))
			col++
		}
		if col > chess.BoardSize {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Value: parts[1]}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastleRights, error) {
	var rights chess.CastleRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingSide = true
		case 'Q':
			rights.WhiteQueenSide = true
		case 'k':
			rights.BlackKingSide = true
		case 'q':
			rights.BlackQueenSide = true
		default:
			return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: parts[2]}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Value: parts[3]}
	}
	return sq, nil
}
