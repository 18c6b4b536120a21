// Package hashing provides Zobrist position keys and a node-count cache
// keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed is fixed so the same position always produces the same key.
const zobristSeed = 0x1234567890ABCDEF

// Zobrist key tables, indexed by coloured piece value and square index.
var (
	zobristPieces     [chess.NumPieceValues << chess.PieceShift][chess.BoardSize * chess.BoardSize]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristSideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))

	for piece := range zobristPieces {
		for sq := range zobristPieces[piece] {
			zobristPieces[piece][sq] = rng.Uint64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// Hash returns the Zobrist key of the game's current position.
func Hash(gs *engine.GameState) uint64 {
	board := gs.Board()
	ep, _ := gs.EnPassantTarget()
	return HashPosition(&board, gs.SideToMove(), gs.CastleRights(), ep)
}

// HashPosition returns the Zobrist key of a position given by its parts.
// ep is the en passant target or chess.NoSquare.
func HashPosition(board *chess.Board, side chess.Colour, rights chess.CastleRights, ep chess.Square) uint64 {
	var h uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsColoured() {
				h ^= zobristPieces[piece][chess.Sq(row, col).Index()]
			}
		}
	}

	h ^= zobristCastling[castlingIndex(rights)]

	if ep.OnBoard() {
		h ^= zobristEnPassant[ep.Col]
	}

	if side == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}

// castlingIndex packs the four rights into 0..15.
func castlingIndex(rights chess.CastleRights) int {
	idx := 0
	if rights.WhiteKingSide {
		idx |= 1
	}
	if rights.WhiteQueenSide {
		idx |= 2
	}
	if rights.BlackKingSide {
		idx |= 4
	}
	if rights.BlackQueenSide {
		idx |= 8
	}
	return idx
}
