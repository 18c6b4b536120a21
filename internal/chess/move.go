package chess

// MoveClass marks the special-move kinds a Move can carry.
type MoveClass int

const (
	Ordinary MoveClass = iota
	EnPassant
	Castle
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	switch c {
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	default:
		return "Ordinary"
	}
}

// promotionKeyBit is folded into Move.ID for promoting moves.
const promotionKeyBit = 1 << 12

// Move is an immutable description of a single transition. Everything it
// knows about the board is captured when it is built; it keeps no
// reference to the board afterwards.
type Move struct {
	from          Square
	to            Square
	pieceMoved    Piece
	pieceCaptured Piece
	class         MoveClass
	promotion     bool
	id            int
}

// NewMove builds a move from origin to destination as seen on board.
// For an EnPassant move the captured piece is the opposing pawn, not the
// (empty) destination content.
func NewMove(from, to Square, board *Board, class MoveClass) Move {
	m := Move{
		from:          from,
		to:            to,
		pieceMoved:    board.Get(from),
		pieceCaptured: board.Get(to),
		class:         class,
	}
	if ExtractPiece(m.pieceMoved) == Pawn {
		m.promotion = to.Row == PromotionRow(ExtractColour(m.pieceMoved))
	}
	if class == EnPassant {
		m.pieceCaptured = MakeColouredPiece(ExtractColour(m.pieceMoved).Opposite(), Pawn)
	}
	m.id = from.Index()*64 + to.Index()
	if m.promotion {
		m.id |= promotionKeyBit
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// PieceMoved returns the coloured piece that moves.
func (m Move) PieceMoved() Piece { return m.pieceMoved }

// PieceCaptured returns the coloured piece captured, or Empty.
func (m Move) PieceCaptured() Piece { return m.pieceCaptured }

// Class returns the special-move class.
func (m Move) Class() MoveClass { return m.class }

// IsPawnPromotion returns true if a pawn reaches the far rank.
func (m Move) IsPawnPromotion() bool { return m.promotion }

// IsEnPassant returns true for an en passant capture.
func (m Move) IsEnPassant() bool { return m.class == EnPassant }

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool { return m.class == Castle }

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool { return m.pieceCaptured.IsColoured() }

// IsKingSideCastle returns true for a castle towards the h-file.
func (m Move) IsKingSideCastle() bool {
	return m.class == Castle && m.to.Col > m.from.Col
}

// CapturedSquare returns the square the captured piece stands on. It
// differs from To only for en passant.
func (m Move) CapturedSquare() Square {
	if m.class == EnPassant {
		return Square{Row: m.from.Row, Col: m.to.Col}
	}
	return m.to
}

// ID returns the integer key used for equality.
func (m Move) ID() int { return m.id }

// Equal reports whether two moves share origin, destination and
// promotion status.
func (m Move) Equal(other Move) bool {
	return m.id == other.id
}

// Notation renders the move for display lists:
// promotions as "e7e8Q", castles as "0-0"/"0-0-0", en passant as
// "exd6 e.p." and everything else as origin+destination.
func (m Move) Notation() string {
	switch {
	case m.promotion:
		return m.from.String() + m.to.String() + "Q"
	case m.class == Castle:
		return m.castleText()
	case m.class == EnPassant:
		return string(m.from.File()) + "x" + m.to.String() + " e.p."
	default:
		return m.from.String() + m.to.String()
	}
}

// String renders the move the way the move-log panel shows it.
func (m Move) String() string {
	if m.class == Castle {
		return m.castleText()
	}
	if ExtractPiece(m.pieceMoved) == Pawn && !m.IsCapture() && m.promotion {
		return m.to.String() + "Q"
	}
	return m.from.String() + m.to.String()
}

// UCI renders the move in long algebraic form, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	s := m.from.String() + m.to.String()
	if m.promotion {
		s += "q"
	}
	return s
}

func (m Move) castleText() string {
	if m.IsKingSideCastle() {
		return "0-0"
	}
	return "0-0-0"
}
