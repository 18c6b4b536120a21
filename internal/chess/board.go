package chess

import "strings"

// Board is an 8x8 grid of square contents. It has no legality knowledge;
// it only stores pieces by square. Boards are copied by value.
type Board struct {
	// Squares[row][col]; row 0 is the eighth rank.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Get returns the piece on sq, or Off when sq lies outside the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Off
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// String draws the board with White pieces in upper case, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte(RankBase + BoardSize - 1 - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(PieceLetter(b.Squares[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

// PieceLetter returns the diagram letter of a square's content: upper
// case for White, lower case for Black and '.' for an empty square.
func PieceLetter(p Piece) byte {
	if !p.IsColoured() {
		return '.'
	}
	letter := ExtractPiece(p).Letter()
	if ExtractColour(p) == Black {
		letter += 'a' - 'A'
	}
	return letter
}
