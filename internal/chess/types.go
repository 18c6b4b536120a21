// Package chess provides core chess types: colours, pieces, squares,
// the board grid, moves and castling rights.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when packed
// with MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Off the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	if p.IsColoured() {
		return ExtractColour(p).String() + " " + ExtractPiece(p).String()
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsColoured reports whether p is a packed coloured piece rather than
// a bare kind, Empty or Off.
func (p Piece) IsColoured() bool {
	return p >= MakeColouredPiece(Black, Pawn)
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty and Off.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether p is a piece of the given colour.
func IsColour(p Piece, colour Colour) bool {
	return p.IsColoured() && ExtractColour(p) == colour
}

// Square is a board coordinate. Row 0 is the eighth rank and Col 0 is
// the a-file, so White pawns advance towards lower rows.
type Square struct {
	Row int
	Col int
}

// NoSquare stands for an absent square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// ParseSquare converts algebraic notation such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	if col < 0 || col >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - 1 - rank, Col: col}, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Step returns the square dist steps away along d.
func (s Square) Step(d Direction, dist int) Square {
	return Square{Row: s.Row + d.DRow*dist, Col: s.Col + d.DCol*dist}
}

// Index returns the row-major index 0..63.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Direction is a unit step (or a knight offset) on the board.
type Direction struct {
	DRow int
	DCol int
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// Orthogonal and diagonal ray directions. The orthogonal four come first;
// attack analysis relies on that ordering.
var (
	OrthogonalDirections = [4]Direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	DiagonalDirections   = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	KnightOffsets        = [8]Direction{{-2, -1}, {-2, 1}, {-1, 2}, {1, 2}, {2, -1}, {2, 1}, {-1, -2}, {1, -2}}
	KingOffsets          = [8]Direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PawnDirection returns the row step of a pawn of the given colour.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which pawns may double-push.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the far row on which pawns of colour promote.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// HomeRow returns the back rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
